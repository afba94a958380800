package routes

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/gubvirtualgamingclub/vgs-backend/app"
	"github.com/gubvirtualgamingclub/vgs-backend/driveurl"
	"github.com/gubvirtualgamingclub/vgs-backend/form"
	"github.com/gubvirtualgamingclub/vgs-backend/httpx"
	"github.com/gubvirtualgamingclub/vgs-backend/log"
	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

// checkFormPayload runs the save precondition: required top-level
// attributes plus the field-schema invariants, reported together so
// the builder can show one aggregate message. It also normalizes the
// payload in place (trimmed labels, cleaned option lists, Drive links
// rewritten).
func checkFormPayload(app app.App, frm *model.RegistrationForm) []string {
	for i := range frm.Fields {
		frm.Fields[i] = form.NormalizeField(frm.Fields[i])
	}
	frm.BannerURL = driveurl.Direct(frm.BannerURL)
	frm.LogoURL = driveurl.Direct(frm.LogoURL)

	var problems []string
	if err := app.Validate.Struct(frm); err != nil {
		problems = append(problems, "name, title and Google Sheet URL are required, with at least one field")
	}
	problems = append(problems, form.ValidateSchema(frm.Fields)...)
	return problems
}

func CreateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		frm := model.RegistrationForm{}
		err := render.DecodeJSON(r.Body, &frm)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		if problems := checkFormPayload(app, &frm); len(problems) > 0 {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{"errors": problems})
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		var formId int
		err = tx.QueryRowContext(r.Context(), `
			INSERT INTO registration_form
				(game_slug, title, description, banner_url, logo_url, google_sheet_url,
				 is_active, max_registrations, registration_deadline)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING id`,
			frm.GameSlug, frm.Title, frm.Description, frm.BannerURL, frm.LogoURL,
			frm.GoogleSheetURL, frm.IsActive, frm.MaxRegistrations, frm.RegistrationDeadline,
		).Scan(&formId)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form", err)
			return
		}

		err = insertFields(r.Context(), tx, formId, frm.Fields)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form.fields", err)
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.insert_form.commit", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{
			"id": formId,
		})
	}
}

func ListForms(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT
				s.id, s.version, s.game_slug, s.title, s.is_active, s.created_at,
				(SELECT COUNT(*) FROM submission WHERE form_id = s.id)
			FROM registration_form s
			ORDER BY s.created_at DESC`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_forms", err)
			return
		}
		defer rows.Close()

		type formRow struct {
			model.RegistrationForm
			Submissions int `json:"submissions"`
		}

		forms := []formRow{}
		for rows.Next() {
			f := formRow{}
			err = rows.Scan(&f.ID, &f.Version, &f.GameSlug, &f.Title, &f.IsActive, &f.CreatedAt, &f.Submissions)
			if err != nil {
				httpx.LogInternalError(w, "db.get_forms.scan", err)
				return
			}
			forms = append(forms, f)
		}

		render.JSON(w, r, map[string]any{
			"forms": forms,
		})
	}
}

func GetFormById(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		frm, found, err := fetchFormWhere(r.Context(), app.DB, "s.id = $1", formId)
		if err != nil {
			httpx.LogInternalError(w, "db.get_form", err)
			return
		}
		if !found {
			httpx.LogNotFound(w, "get_form", formId)
			return
		}

		render.JSON(w, r, frm)
	}
}

// UpdateForm commits the whole form, fields included, in one write.
// Fields are dropped and recreated inside the transaction; the version
// column guards against a concurrent editor.
func UpdateForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		frm := model.RegistrationForm{}
		err = render.DecodeJSON(r.Body, &frm)
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		if problems := checkFormPayload(app, &frm); len(problems) > 0 {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, map[string]any{"errors": problems})
			return
		}

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		_, err = tx.ExecContext(r.Context(), `
			DELETE FROM form_field
			WHERE form_id = $1`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.delete_fields", err)
			return
		}

		err = insertFields(r.Context(), tx, formId, frm.Fields)
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.fields", err)
			return
		}

		res, err := tx.ExecContext(r.Context(), `
			UPDATE registration_form
			SET
				game_slug = $1,
				title = $2,
				description = $3,
				banner_url = $4,
				logo_url = $5,
				google_sheet_url = $6,
				is_active = $7,
				max_registrations = $8,
				registration_deadline = $9,
				version = version+1
			WHERE	id = $10
				AND version = $11`,
			frm.GameSlug, frm.Title, frm.Description, frm.BannerURL, frm.LogoURL,
			frm.GoogleSheetURL, frm.IsActive, frm.MaxRegistrations, frm.RegistrationDeadline,
			formId,
			frm.Version,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_form", err)
			return
		}
		// optimistic lock
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.verify", err)
			return
		}
		if n < 1 {
			httpx.LogStatus(w, http.StatusConflict, log.DebugLevel, "db.update_form.verify.conflict")
			return
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, "db.update_form.commit", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// DeleteForm removes a form; fields and submissions go with it via the
// schema's cascade.
func DeleteForm(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		res, err := app.ExecContext(r.Context(), `
			DELETE FROM registration_form WHERE id = $1`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form", err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_form.verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "delete_form", formId)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func GetFormSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		rows, err := app.QueryContext(r.Context(), `
			SELECT id, form_id, payment_method_id, transaction_id, answers, created_at
			FROM submission
			WHERE form_id = $1
			ORDER BY created_at DESC`,
			formId,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.get_submissions", err)
			return
		}
		defer rows.Close()

		submissions := []model.Submission{}
		for rows.Next() {
			s := model.Submission{}
			var answers string
			err = rows.Scan(&s.ID, &s.FormID, &s.PaymentMethodID, &s.TransactionID, &answers, &s.CreatedAt)
			if err != nil {
				httpx.LogInternalError(w, "db.get_submissions.scan", err)
				return
			}

			err = json.Unmarshal([]byte(answers), &s.Answers)
			if err != nil {
				httpx.LogInternalError(w, "db.get_submissions.parse_answers", err)
				return
			}

			submissions = append(submissions, s)
		}

		render.JSON(w, r, map[string]any{
			"submissions": submissions,
		})
	}
}

func CountFormSubmissions(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		formId, err := strconv.Atoi(chi.URLParam(r, "id"))
		if err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
			return
		}

		var count int
		err = app.QueryRowContext(r.Context(), `
			SELECT COUNT(*) FROM submission WHERE form_id = $1`,
			formId,
		).Scan(&count)
		if err != nil {
			httpx.LogInternalError(w, "db.count_submissions", err)
			return
		}

		render.JSON(w, r, map[string]any{"count": count})
	}
}
