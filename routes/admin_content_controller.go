package routes

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/gubvirtualgamingclub/vgs-backend/app"
	"github.com/gubvirtualgamingclub/vgs-backend/driveurl"
	"github.com/gubvirtualgamingclub/vgs-backend/httpx"
	"github.com/gubvirtualgamingclub/vgs-backend/log"
	"github.com/gubvirtualgamingclub/vgs-backend/model"
)

func urlParamId(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.get_url_param.id")
		return 0, false
	}
	return id, true
}

// decodeValid decodes the request body into dst and runs struct
// validation; it writes the error response itself when either fails.
func decodeValid(app app.App, w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := render.DecodeJSON(r.Body, dst); err != nil {
		httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
		return false
	}
	if err := app.Validate.Struct(dst); err != nil {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, map[string]any{"error": err.Error()})
		return false
	}
	return true
}

// deleteById runs a delete statement and reports 204/404.
func deleteById(app app.App, code string) http.HandlerFunc {
	queries := map[string]string{
		"payment_method":  `DELETE FROM payment_method WHERE id = $1`,
		"activity":        `DELETE FROM activity WHERE id = $1`,
		"game":            `DELETE FROM game WHERE id = $1`,
		"committee":       `DELETE FROM committee_member WHERE id = $1`,
		"sponsor":         `DELETE FROM sponsor WHERE id = $1`,
		"contact_message": `DELETE FROM contact_message WHERE id = $1`,
	}
	query := queries[code]

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamId(w, r)
		if !ok {
			return
		}

		res, err := app.ExecContext(r.Context(), query, id)
		if err != nil {
			httpx.LogInternalError(w, "db.delete_"+code, err)
			return
		}
		n, err := res.RowsAffected()
		if err != nil {
			httpx.LogInternalError(w, "db.delete_"+code+".verify", err)
			return
		}
		if n < 1 {
			httpx.LogNotFound(w, "delete_"+code, id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// payment methods

func CreatePaymentMethod(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m := model.PaymentMethod{}
		if !decodeValid(app, w, r, &m) {
			return
		}
		m.LogoURL = driveurl.Direct(m.LogoURL)

		var id int
		err := app.QueryRowContext(r.Context(), `
			INSERT INTO payment_method (name, number, account_type, instructions, logo_url, is_active, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id`,
			m.Name, m.Number, m.AccountType, m.Instructions, m.LogoURL, m.IsActive, m.Position,
		).Scan(&id)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_payment_method", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{"id": id})
	}
}

func ListPaymentMethods(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		methods, err := fetchPaymentMethods(r.Context(), app.DB, false)
		if err != nil {
			httpx.LogInternalError(w, "db.get_payment_methods", err)
			return
		}
		render.JSON(w, r, map[string]any{"paymentMethods": methods})
	}
}

func UpdatePaymentMethod(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamId(w, r)
		if !ok {
			return
		}
		m := model.PaymentMethod{}
		if !decodeValid(app, w, r, &m) {
			return
		}
		m.LogoURL = driveurl.Direct(m.LogoURL)

		res, err := app.ExecContext(r.Context(), `
			UPDATE payment_method
			SET name = $1, number = $2, account_type = $3, instructions = $4,
				logo_url = $5, is_active = $6, position = $7
			WHERE id = $8`,
			m.Name, m.Number, m.AccountType, m.Instructions, m.LogoURL, m.IsActive, m.Position, id,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_payment_method", err)
			return
		}
		if n, _ := res.RowsAffected(); n < 1 {
			httpx.LogNotFound(w, "update_payment_method", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// TogglePaymentMethod flips availability without touching history;
// existing submissions keep their reference.
func TogglePaymentMethod(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamId(w, r)
		if !ok {
			return
		}

		body := struct {
			IsActive bool `json:"isActive"`
		}{}
		if err := render.DecodeJSON(r.Body, &body); err != nil {
			httpx.LogStatus(w, http.StatusBadRequest, log.DebugLevel, "request.parse_body")
			return
		}

		res, err := app.ExecContext(r.Context(), `
			UPDATE payment_method SET is_active = $1 WHERE id = $2`,
			body.IsActive, id,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.toggle_payment_method", err)
			return
		}
		if n, _ := res.RowsAffected(); n < 1 {
			httpx.LogNotFound(w, "toggle_payment_method", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeletePaymentMethod(app app.App) http.HandlerFunc {
	return deleteById(app, "payment_method")
}

// activities

func CreateActivity(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a := model.Activity{}
		if !decodeValid(app, w, r, &a) {
			return
		}
		a.ImageURL = driveurl.Direct(a.ImageURL)

		var id int
		err := app.QueryRowContext(r.Context(), `
			INSERT INTO activity (title, description, image_url, held_on, position)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			a.Title, a.Description, a.ImageURL, a.HeldOn, a.Position,
		).Scan(&id)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_activity", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{"id": id})
	}
}

func UpdateActivity(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamId(w, r)
		if !ok {
			return
		}
		a := model.Activity{}
		if !decodeValid(app, w, r, &a) {
			return
		}
		a.ImageURL = driveurl.Direct(a.ImageURL)

		res, err := app.ExecContext(r.Context(), `
			UPDATE activity
			SET title = $1, description = $2, image_url = $3, held_on = $4, position = $5
			WHERE id = $6`,
			a.Title, a.Description, a.ImageURL, a.HeldOn, a.Position, id,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_activity", err)
			return
		}
		if n, _ := res.RowsAffected(); n < 1 {
			httpx.LogNotFound(w, "update_activity", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteActivity(app app.App) http.HandlerFunc {
	return deleteById(app, "activity")
}

// games

func CreateGame(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := model.Game{}
		if !decodeValid(app, w, r, &g) {
			return
		}
		g.ImageURL = driveurl.Direct(g.ImageURL)

		var id int
		err := app.QueryRowContext(r.Context(), `
			INSERT INTO game (slug, name, description, image_url, position)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			g.Slug, g.Name, g.Description, g.ImageURL, g.Position,
		).Scan(&id)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_game", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{"id": id})
	}
}

func UpdateGame(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamId(w, r)
		if !ok {
			return
		}
		g := model.Game{}
		if !decodeValid(app, w, r, &g) {
			return
		}
		g.ImageURL = driveurl.Direct(g.ImageURL)

		res, err := app.ExecContext(r.Context(), `
			UPDATE game
			SET slug = $1, name = $2, description = $3, image_url = $4, position = $5
			WHERE id = $6`,
			g.Slug, g.Name, g.Description, g.ImageURL, g.Position, id,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_game", err)
			return
		}
		if n, _ := res.RowsAffected(); n < 1 {
			httpx.LogNotFound(w, "update_game", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteGame(app app.App) http.HandlerFunc {
	return deleteById(app, "game")
}

// committee

func CreateCommitteeMember(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m := model.CommitteeMember{}
		if !decodeValid(app, w, r, &m) {
			return
		}
		m.PhotoURL = driveurl.Direct(m.PhotoURL)

		var id int
		err := app.QueryRowContext(r.Context(), `
			INSERT INTO committee_member (name, role, photo_url, email, linkedin, position)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			m.Name, m.Role, m.PhotoURL, m.Email, m.LinkedIn, m.Position,
		).Scan(&id)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_committee_member", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{"id": id})
	}
}

func UpdateCommitteeMember(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamId(w, r)
		if !ok {
			return
		}
		m := model.CommitteeMember{}
		if !decodeValid(app, w, r, &m) {
			return
		}
		m.PhotoURL = driveurl.Direct(m.PhotoURL)

		res, err := app.ExecContext(r.Context(), `
			UPDATE committee_member
			SET name = $1, role = $2, photo_url = $3, email = $4, linkedin = $5, position = $6
			WHERE id = $7`,
			m.Name, m.Role, m.PhotoURL, m.Email, m.LinkedIn, m.Position, id,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_committee_member", err)
			return
		}
		if n, _ := res.RowsAffected(); n < 1 {
			httpx.LogNotFound(w, "update_committee_member", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteCommitteeMember(app app.App) http.HandlerFunc {
	return deleteById(app, "committee")
}

// sponsors

func CreateSponsor(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s := model.Sponsor{}
		if !decodeValid(app, w, r, &s) {
			return
		}
		s.LogoURL = driveurl.Direct(s.LogoURL)

		var id int
		err := app.QueryRowContext(r.Context(), `
			INSERT INTO sponsor (name, tier, logo_url, website, position)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			s.Name, s.Tier, s.LogoURL, s.Website, s.Position,
		).Scan(&id)
		if err != nil {
			httpx.LogInternalError(w, "db.insert_sponsor", err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		render.JSON(w, r, map[string]any{"id": id})
	}
}

func UpdateSponsor(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlParamId(w, r)
		if !ok {
			return
		}
		s := model.Sponsor{}
		if !decodeValid(app, w, r, &s) {
			return
		}
		s.LogoURL = driveurl.Direct(s.LogoURL)

		res, err := app.ExecContext(r.Context(), `
			UPDATE sponsor
			SET name = $1, tier = $2, logo_url = $3, website = $4, position = $5
			WHERE id = $6`,
			s.Name, s.Tier, s.LogoURL, s.Website, s.Position, id,
		)
		if err != nil {
			httpx.LogInternalError(w, "db.update_sponsor", err)
			return
		}
		if n, _ := res.RowsAffected(); n < 1 {
			httpx.LogNotFound(w, "update_sponsor", id)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteSponsor(app app.App) http.HandlerFunc {
	return deleteById(app, "sponsor")
}

// contact messages

func ListContactMessages(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := app.QueryContext(r.Context(), `
			SELECT id, name, email, subject, body, created_at
			FROM contact_message
			ORDER BY created_at DESC`)
		if err != nil {
			httpx.LogInternalError(w, "db.get_contact_messages", err)
			return
		}
		defer rows.Close()

		messages := []model.ContactMessage{}
		for rows.Next() {
			m := model.ContactMessage{}
			err = rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.CreatedAt)
			if err != nil {
				httpx.LogInternalError(w, "db.get_contact_messages.scan", err)
				return
			}
			messages = append(messages, m)
		}

		render.JSON(w, r, map[string]any{"messages": messages})
	}
}

func DeleteContactMessage(app app.App) http.HandlerFunc {
	return deleteById(app, "contact_message")
}
