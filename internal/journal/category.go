package journal

// Category tags a journal entry and decides which detail fields it carries.
type Category string

const (
	CategoryGrowth Category = "growth"
	CategorySleep  Category = "sleep"
	CategoryMeal   Category = "meal"
	CategoryHealth Category = "health"
	CategoryDiaper Category = "diaper"
	CategoryOther  Category = "other"
)

// FieldKind is the primitive type of a detail field.
type FieldKind string

const (
	FieldNumber   FieldKind = "number"
	FieldDatetime FieldKind = "datetime"
	FieldText     FieldKind = "text"
	FieldBool     FieldKind = "bool"
	FieldEnum     FieldKind = "enum"
	FieldSet      FieldKind = "set"
)

// FieldDesc describes one detail field a category accepts.
type FieldDesc struct {
	Name     string    `json:"name"`
	Kind     FieldKind `json:"kind"`
	Required bool      `json:"required"`
}

// CategoryInfo carries the display metadata and detail-field shape of a category.
type CategoryInfo struct {
	Key      Category    `json:"key"`
	LabelKey string      `json:"label_key"`
	Color    string      `json:"color"`
	Fields   []FieldDesc `json:"fields"`
}

// categories is fixed at process start; there is no dynamic registration.
var categories = []CategoryInfo{
	{
		Key: CategoryGrowth, LabelKey: "category.growth", Color: "#6AA6FF",
		Fields: []FieldDesc{
			{Name: "height", Kind: FieldNumber},
			{Name: "weight", Kind: FieldNumber},
			{Name: "head_circumference", Kind: FieldNumber},
		},
	},
	{
		Key: CategorySleep, LabelKey: "category.sleep", Color: "#9ADBC6",
		Fields: []FieldDesc{
			{Name: "start_time", Kind: FieldDatetime, Required: true},
			{Name: "end_time", Kind: FieldDatetime},
			{Name: "quality", Kind: FieldEnum},
		},
	},
	{
		Key: CategoryMeal, LabelKey: "category.meal", Color: "#FFC98B",
		Fields: []FieldDesc{
			{Name: "food_type", Kind: FieldText},
			{Name: "amount", Kind: FieldText},
			{Name: "did_burp", Kind: FieldBool},
		},
	},
	{
		Key: CategoryHealth, LabelKey: "category.health", Color: "#ef4444",
		Fields: []FieldDesc{
			{Name: "temperature", Kind: FieldNumber},
			{Name: "symptoms", Kind: FieldSet},
			{Name: "symptom_other", Kind: FieldText},
		},
	},
	{
		Key: CategoryDiaper, LabelKey: "category.diaper", Color: "#38bdf8",
		Fields: []FieldDesc{
			{Name: "amount", Kind: FieldEnum},
			{Name: "condition", Kind: FieldEnum},
			{Name: "color", Kind: FieldEnum},
		},
	},
	{
		Key: CategoryOther, LabelKey: "category.other", Color: "#6b7280",
		Fields: nil, // title and comment only
	},
}

// Lookup returns the registry info for a category tag.
func Lookup(cat Category) (CategoryInfo, bool) {
	for _, info := range categories {
		if info.Key == cat {
			return info, true
		}
	}
	return CategoryInfo{}, false
}

// Categories returns the registry in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}
