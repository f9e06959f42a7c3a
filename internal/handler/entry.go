package handler

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/twkim02/todoc-chat-ai/internal/journal"
	"github.com/twkim02/todoc-chat-ai/pkg"
	"github.com/twkim02/todoc-chat-ai/pkg/model"
	"github.com/twkim02/todoc-chat-ai/pkg/response"
)

// CreateEntry validates and saves a journal entry for a child: the normalized
// entry is persisted durably first and mirrored into the session store only
// once the insert succeeds, so a failed save leaves no state behind anywhere.
// POST /api/v1/children/:id/entries
func (app *Application) CreateEntry(c *gin.Context) {
	childID, ok := app.authorizedChild(c)
	if !ok {
		return
	}

	var req model.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		app.Logger.Sugar().Warnw("create entry bad request", "err", err)
		response.BadRequest(c, err.Error())
		return
	}

	entry, err := journal.Validate(toJournalInput(req))
	if err != nil {
		if errors.Is(err, journal.ErrUnknownCategory) {
			response.BadRequest(c, err.Error())
			return
		}
		response.ValidationError(c, err.Error())
		return
	}

	stored, err := app.EntryRepo.Create(c.Request.Context(), childID, entry)
	if err != nil {
		app.Logger.Sugar().Errorw("entry persist failed", "child", childID, "err", err)
		response.InternalError(c, "could not save entry")
		return
	}
	app.Recents.ForChild(childID).Append(stored)

	response.Created(c, model.NewEntryResponse(stored))
}

// RecentEntries returns the session's newest entries for the home and record
// screens. The UI shows three before offering "see more".
// GET /api/v1/children/:id/entries/recent
func (app *Application) RecentEntries(c *gin.Context) {
	childID, ok := app.authorizedChild(c)
	if !ok {
		return
	}

	limit := 3
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	store := app.Recents.ForChild(childID)
	out := make([]model.EntryResponse, 0, limit)
	for e := range store.List(limit) {
		out = append(out, model.NewEntryResponse(e))
	}
	response.OKWithMeta(c, out, &response.Meta{Total: store.Len()})
}

// ListEntries returns a durable page of the child's entries, newest first.
// GET /api/v1/children/:id/entries
func (app *Application) ListEntries(c *gin.Context) {
	childID, ok := app.authorizedChild(c)
	if !ok {
		return
	}

	var q model.ListEntriesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		app.Logger.Sugar().Warnw("list entries bad query", "err", err)
		response.BadRequest(c, err.Error())
		return
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize
	entries, total, err := app.EntryRepo.ListByChild(c.Request.Context(), childID, limit, offset)
	if err != nil {
		app.Logger.Sugar().Errorw("list entries repo error", "child", childID, "err", err)
		response.InternalError(c, "")
		return
	}

	out := make([]model.EntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, model.NewEntryResponse(e))
	}
	response.OKWithMeta(c, out, &response.Meta{
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
		HasNext:  offset+len(entries) < total,
	})
}

// ListCategories exposes the category registry so the form can be built from
// the same source of truth the validator uses.
// GET /api/v1/categories
func (app *Application) ListCategories(c *gin.Context) {
	response.OK(c, journal.Categories())
}

// authorizedChild resolves the :id param and checks the child belongs to the
// caller.
func (app *Application) authorizedChild(c *gin.Context) (string, bool) {
	claims := app.GetClaimsFromContext(c)
	if claims == nil {
		response.Unauthorized(c, "")
		return "", false
	}
	childID := c.Param("id")
	if childID == "" {
		response.BadRequest(c, "missing child id")
		return "", false
	}

	child, err := app.ChildRepo.GetByID(c.Request.Context(), childID)
	if err != nil {
		response.NotFound(c, "child not found")
		return "", false
	}
	if child.UserID != claims.UserID {
		response.Forbidden(c, "not your child")
		return "", false
	}
	return childID, true
}

// toJournalInput converts the wire form into the validator's input. An absent
// or malformed date stays zero so the validator rejects it with MissingDate.
func toJournalInput(req model.CreateEntryRequest) journal.Input {
	in := journal.Input{
		Category: journal.Category(req.Category),
		Title:    req.Title,
		Content:  req.Content,
	}
	if pkg.IsValidYYYYMMDD(req.Date) {
		in.Date, _ = time.ParseInLocation("2006-01-02", req.Date, time.Local)
	}

	if req.Growth != nil {
		in.Growth = &journal.GrowthDetails{
			Height:            req.Growth.Height,
			Weight:            req.Growth.Weight,
			HeadCircumference: req.Growth.HeadCircumference,
		}
	}
	if req.Sleep != nil {
		sleep := &journal.SleepInput{
			EndTime: req.Sleep.EndTime,
			Quality: journal.SleepQuality(req.Sleep.Quality),
		}
		if req.Sleep.StartTime != nil {
			sleep.StartTime = *req.Sleep.StartTime
		}
		in.Sleep = sleep
	}
	if req.Meal != nil {
		in.Meal = &journal.MealDetails{
			FoodType: req.Meal.FoodType,
			Amount:   req.Meal.Amount,
			DidBurp:  req.Meal.DidBurp,
		}
	}
	if req.Health != nil {
		symptoms := make([]journal.Symptom, 0, len(req.Health.Symptoms))
		for _, s := range req.Health.Symptoms {
			symptoms = append(symptoms, journal.Symptom(s))
		}
		in.Health = &journal.HealthInput{
			Temperature:  req.Health.Temperature,
			Symptoms:     symptoms,
			OtherChecked: req.Health.SymptomOtherChecked,
			OtherText:    req.Health.SymptomOtherText,
		}
	}
	if req.Diaper != nil {
		in.Diaper = &journal.DiaperDetails{
			Amount:    journal.DiaperAmount(req.Diaper.Amount),
			Condition: journal.DiaperCondition(req.Diaper.Condition),
			Color:     journal.DiaperColor(req.Diaper.Color),
		}
	}
	return in
}
