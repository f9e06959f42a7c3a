package chat

import "strings"

// Persona identifies one of the canned chat agents.
type Persona string

const (
	PersonaDoctor       Persona = "doctor"
	PersonaMom          Persona = "mom"
	PersonaNutritionist Persona = "nutritionist"
)

// Personas returns the agents in tab order.
func Personas() []Persona {
	return []Persona{PersonaDoctor, PersonaMom, PersonaNutritionist}
}

// Valid reports whether p names a known persona.
func (p Persona) Valid() bool {
	switch p {
	case PersonaDoctor, PersonaMom, PersonaNutritionist:
		return true
	}
	return false
}

// rule matches when the lowercased question contains any keyword from "any",
// and, if "also" is non-empty, any keyword from "also" too.
type rule struct {
	any    []string
	also   []string
	answer string
}

func (r rule) matches(q string) bool {
	if !containsAny(q, r.any) {
		return false
	}
	return len(r.also) == 0 || containsAny(q, r.also)
}

func containsAny(q string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

var greetings = map[Persona]string{
	PersonaDoctor:       "Hello! I'm Doctor AI. Feel free to ask anything about your baby's health and development. 📊 I can provide personalized answers based on your recorded data.",
	PersonaMom:          "Hello! I'm Mom AI. I'm here to share parenting experiences and know-how. Do you have any questions? 💡 I can offer advice based on your recorded parenting data.",
	PersonaNutritionist: "Hello! I'm Nutritionist AI. I can help with baby food recipes, nutritional balance, and eating habits. 🥗 Ask me anything about your baby's diet!",
}

var fallbacks = map[Persona]string{
	PersonaDoctor:       "If you tell me more about the symptoms you are curious about, I can give you a more accurate answer. Please refer to records such as temperature, sleep patterns, and meal amounts.",
	PersonaMom:          "I'm Mom AI, and I'll talk to you from a mother's heart. What's on your mind?",
	PersonaNutritionist: "I can help with meal plans, recipes, and nutritional advice. What would you like to know?",
}

// rules are checked in order; the first match wins.
var rules = map[Persona][]rule{
	PersonaDoctor: {
		{
			any: []string{"temperature", "37", "38"},
			answer: "That's a great question. 👩‍⚕️\nAs Doctor AI, I will explain the condition from a medical perspective.\n\n" +
				"If the temperature is 37.5°C and the child has been crying for hours, it is a situation that requires immediate and careful observation. " +
				"A slight fever alone is not an emergency, but prolonged crying can be a sign of pain, discomfort, early infection, or dehydration.",
		},
		{
			any: []string{"sleep", "irregular"},
			answer: "I'll speak based on an 8-month-old baby.\nAt this age, babies are very active and their naps decrease, so irregular sleep patterns are a very common issue.\n\n" +
				"Total sleep time: 13-15 hours a day\nNight sleep: Usually sleeps around 8-9 PM and wakes up around 6-7 AM\n\n" +
				"Try creating a consistent sleep routine and adjusting nap times.",
		},
		{
			any: []string{"solid food", "start"},
			answer: "The Korean Pediatric Society and WHO recommend starting solid foods between 4-6 months of age, with the most ideal time being around 6 months of age. " +
				"Start slowly with one ingredient at a time, and carefully watch for allergic reactions.",
		},
	},
	PersonaMom: {
		{
			any: []string{"sleep training"},
			answer: "I'm Mom AI, and I'll talk to you from a mother's heart.\n\n💬 **What is Sleep Training?**\n\n" +
				"\"Sleep training\" is a process of \"helping them develop the power to fall asleep on their own.\"\n\n" +
				"🌜 **1. Tidy up the daily routine before bedtime**\nBath → Feeding → Dim lights → Lullaby → Hug → Put to bed\n\n" +
				"🌙 **2. Put them down before they are fully asleep**\nThis is the hardest part, but try to put the baby down when they are drowsy.\n\n" +
				"💖 **A word from Mom AI**\n\"Sleep training is not a war, it's 'trust training'.\"",
		},
		{
			any:  []string{"solid food"},
			also: []string{"refuse", "not", "eat"},
			answer: "It's so upsetting when that happens 😢\nAs Mom AI, I know that feeling all too well.\n" +
				"But it's okay — refusing solid food at this stage is a part of development that almost every baby goes through.\n\n" +
				"Try changing the texture, temperature, or utensils. Don't force-feed, show them a \"joyful table\". " +
				"Once the baby regains interest in food, they'll start eating well.",
		},
		{
			any: []string{"stress", "hard", "tired"},
			answer: "💬 \"Is there a way to relieve parenting stress?\"\n\n" +
				"🌤️ **1. It's enough to be a \"good enough mom,\" not a \"perfect mom\"**\nThere's no such thing as perfect parenting.\n\n" +
				"🫖 **2. Make a very short 'me time'**\nEven 10 minutes is fine. Have a cup of coffee while the baby naps ☕\n\n" +
				"💬 **3. Be sure to 'voice' your feelings**\nParenting can be isolating. Share your feelings with others.\n\n" +
				"💞 **4. And also... come to the ToDoc community**\nYou'll find real moms who have struggled just like you.",
		},
	},
	PersonaNutritionist: {
		{
			any: []string{"recipe", "food"},
			answer: "Here is a nutritious recipe for your baby! 🥣\n\n**Beef and Broccoli Porridge**\n" +
				"- Ingredients: 30g Beef, 20g Broccoli, 50g Rice\n" +
				"- Instructions: Boil the beef and chop finely. Steam broccoli and mash. Cook with rice until soft.\n\n" +
				"This meal is rich in iron and vitamins!",
		},
		{
			any: []string{"allergy"},
			answer: "Common allergens include eggs, milk, peanuts, and shellfish. " +
				"Introduce these one by one and wait 3 days to check for reactions.",
		},
	},
}

// quickQuestions are the suggested prompts shown per persona.
var quickQuestions = map[Persona][]string{
	PersonaDoctor:       {"Is a temperature of 37.5°C okay?", "My baby's sleep pattern is irregular", "When should I start solid foods?"},
	PersonaMom:          {"How do I do sleep training?", "What if my baby refuses solid food?", "How to relieve parenting stress"},
	PersonaNutritionist: {"Iron-rich recipes?", "Baby food schedule", "Allergy check list"},
}

// Greeting returns the persona's opening message.
func Greeting(p Persona) string {
	return greetings[p]
}

// QuickQuestions returns the suggested prompts for a persona.
func QuickQuestions(p Persona) []string {
	out := make([]string, len(quickQuestions[p]))
	copy(out, quickQuestions[p])
	return out
}

// Respond selects the canned answer for a question: case-insensitive substring
// dispatch, first matching rule wins, persona fallback otherwise.
func Respond(p Persona, question string) string {
	q := strings.ToLower(question)
	for _, r := range rules[p] {
		if r.matches(q) {
			return r.answer
		}
	}
	if fb, ok := fallbacks[p]; ok {
		return fb
	}
	return "I'm here to help!"
}
