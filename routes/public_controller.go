package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/gubvirtualgamingclub/vgs-backend/app"
	"github.com/gubvirtualgamingclub/vgs-backend/flow"
	"github.com/gubvirtualgamingclub/vgs-backend/form"
	"github.com/gubvirtualgamingclub/vgs-backend/httpx"
	"github.com/gubvirtualgamingclub/vgs-backend/log"
	"github.com/gubvirtualgamingclub/vgs-backend/model"
	"github.com/gubvirtualgamingclub/vgs-backend/relay"
)

// offline reports whether a fetch result selects the terminal offline
// state: the form is missing or switched off. Both collapse into the
// same public screen.
func offline(frm model.RegistrationForm, found bool) bool {
	return !found || !frm.IsActive
}

func renderOffline(w http.ResponseWriter, r *http.Request, slug string) {
	log.Debugf("form.offline: %s", slug)
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, map[string]any{"status": "offline"})
}

func PublicGetFormBySlug(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		frm, found, err := fetchFormWhere(r.Context(), app.DB, "s.game_slug = $1", slug)
		if err != nil {
			httpx.LogInternalError(w, "db.get_form", err)
			return
		}
		if offline(frm, found) {
			renderOffline(w, r, slug)
			return
		}

		// the relay target is admin-only detail
		frm.GoogleSheetURL = ""
		render.JSON(w, r, frm)
	}
}

func PublicListPaymentMethods(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods, err := fetchPaymentMethods(r.Context(), app.DB, true)
		if err != nil {
			httpx.LogInternalError(w, "db.get_payment_methods", err)
			return
		}
		render.JSON(w, r, map[string]any{"paymentMethods": methods})
	}
}

type submitRequest struct {
	Answers         map[string]any `json:"answers"`
	TransactionID   string         `json:"transactionId"`
	PaymentMethodID int            `json:"paymentMethodId"`
}

// submitGate replays a request's payload through the registration
// flow, so the handler enforces exactly the preconditions the state
// machine defines: valid details, a known active payment method, a
// non-blank transaction id. It returns the flow ready to submit, or
// the field-keyed problems of the step that refused.
func submitGate(frm model.RegistrationForm, methods []model.PaymentMethod, req submitRequest) (*flow.Flow, map[string]string) {
	fl := flow.New(frm, methods)

	for id, value := range form.NormalizeAnswers(frm.Fields, req.Answers) {
		fl.SetAnswer(id, value)
	}
	if err := fl.Next(); err != nil {
		return nil, fl.FieldErrors()
	}

	if err := fl.SelectMethod(req.PaymentMethodID); err != nil {
		return nil, map[string]string{"paymentMethodId": "Select a payment method"}
	}

	fl.SetTransactionID(req.TransactionID)
	if err := fl.BeginSubmit(); err != nil {
		return nil, map[string]string{"transactionId": "Transaction ID is required"}
	}
	return fl, nil
}

// PublicSubmitRegistration is the submission pipeline. Step 1, the
// durable write, decides the outcome; step 2, the spreadsheet relay,
// runs after commit and its result is discarded.
func PublicSubmitRegistration(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")

		req := submitRequest{}
		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		frm, found, err := fetchFormWhere(r.Context(), app.DB, "s.game_slug = $1", slug)
		if err != nil {
			httpx.LogInternalError(w, "db.get_form", err)
			return
		}
		if offline(frm, found) {
			renderOffline(w, r, slug)
			return
		}
		// maxRegistrations and registrationDeadline are advisory on the
		// form record; they are not checked here.

		methods, err := fetchPaymentMethods(r.Context(), app.DB, true)
		if err != nil {
			httpx.LogInternalError(w, "db.get_payment_methods", err)
			return
		}

		fl, problems := submitGate(frm, methods, req)
		if problems != nil {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{"errors": problems})
			return
		}

		var methodName string
		for _, m := range methods {
			if m.ID == fl.Method() {
				methodName = m.Name
			}
		}

		answersJson, err := json.Marshal(fl.Answers())
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission.answers", err)
			return
		}

		// step 1: authoritative write
		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		var submissionId int
		err = tx.QueryRowContext(r.Context(), `
			INSERT INTO submission (form_id, payment_method_id, transaction_id, answers)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			frm.ID,
			fl.Method(),
			strings.TrimSpace(fl.TransactionID()),
			string(answersJson),
		).Scan(&submissionId)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission", err)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.insert_submission.commit", err)
			return
		}
		fl.FinishSubmit(true)

		// step 2: best-effort relay, outcome unobservable. Detached so
		// a slow webhook never holds up the 201.
		flat := relay.Flatten(frm, fl.Answers(), methodName, strings.TrimSpace(fl.TransactionID()))
		go app.Relay.Send(context.WithoutCancel(r.Context()), frm.GoogleSheetURL, flat)

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": submissionId,
		})
	}
}

func PublicListActivities(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, title, description, image_url, held_on, position
			FROM activity
			ORDER BY position, id`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_activities", err)
			return
		}
		defer rows.Close()

		activities := []model.Activity{}
		for rows.Next() {
			a := model.Activity{}
			err = rows.Scan(&a.ID, &a.Title, &a.Description, &a.ImageURL, &a.HeldOn, &a.Position)
			if err != nil {
				httpx.LogInternalError(w, "db.get_activities.scan", err)
				return
			}
			activities = append(activities, a)
		}

		render.JSON(w, r, map[string]any{"activities": activities})
	}
}

func PublicListGames(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, slug, name, description, image_url, position
			FROM game
			ORDER BY position, id`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_games", err)
			return
		}
		defer rows.Close()

		games := []model.Game{}
		for rows.Next() {
			g := model.Game{}
			err = rows.Scan(&g.ID, &g.Slug, &g.Name, &g.Description, &g.ImageURL, &g.Position)
			if err != nil {
				httpx.LogInternalError(w, "db.get_games.scan", err)
				return
			}
			games = append(games, g)
		}

		render.JSON(w, r, map[string]any{"games": games})
	}
}

func PublicListCommittee(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, name, role, photo_url, email, linkedin, position
			FROM committee_member
			ORDER BY position, id`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_committee", err)
			return
		}
		defer rows.Close()

		members := []model.CommitteeMember{}
		for rows.Next() {
			m := model.CommitteeMember{}
			err = rows.Scan(&m.ID, &m.Name, &m.Role, &m.PhotoURL, &m.Email, &m.LinkedIn, &m.Position)
			if err != nil {
				httpx.LogInternalError(w, "db.get_committee.scan", err)
				return
			}
			members = append(members, m)
		}

		render.JSON(w, r, map[string]any{"committee": members})
	}
}

func PublicListSponsors(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, name, tier, logo_url, website, position
			FROM sponsor
			ORDER BY position, id`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_sponsors", err)
			return
		}
		defer rows.Close()

		sponsors := []model.Sponsor{}
		for rows.Next() {
			s := model.Sponsor{}
			err = rows.Scan(&s.ID, &s.Name, &s.Tier, &s.LogoURL, &s.Website, &s.Position)
			if err != nil {
				httpx.LogInternalError(w, "db.get_sponsors.scan", err)
				return
			}
			sponsors = append(sponsors, s)
		}

		render.JSON(w, r, map[string]any{"sponsors": sponsors})
	}
}

func PublicCreateContactMessage(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		msg := model.ContactMessage{}
		err := render.DecodeJSON(r.Body, &msg)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		if err := app.Validate.Struct(msg); err != nil {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{"error": "name, email and message are required"})
			return
		}

		var id int
		err = app.QueryRowContext(r.Context(), `
			INSERT INTO contact_message (name, email, subject, body)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
			msg.Name, msg.Email, msg.Subject, msg.Body,
		).Scan(&id)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_contact_message", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{"id": id})
	}
}
