// handlers.go
package main

import (
	"net/http"
	"strconv"
	"time"

	"learning_journal/pkg/apperr"
	"learning_journal/pkg/httputil"
	"learning_journal/pkg/logger"
	"learning_journal/pkg/template"
	"learning_journal/pkg/validation"
)

// pageSize is the number of entries per listing page. The serve command's
// --page-size flag overrides the default.
var pageSize = defaultPageSize

// entryIDFromPath parses the {id} path segment.
func entryIDFromPath(r *http.Request) (int, error) {
	return strconv.Atoi(r.PathValue("id"))
}

// listingData is the payload for the index and tag listing templates.
type listingData struct {
	User  *User
	Page  Page
	Tag   string
	Error string
}

// formData is the payload for the entry and account form templates.
type formData struct {
	User  *User
	Entry *Entry
	Error string
}

// indexHandler serves the paginated entry listing. Visible logged in or out.
func indexHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := listAll()
	if err != nil {
		httputil.InternalServerError(w, "Could not load entries", err)
		return
	}

	pageNumber, _ := strconv.Atoi(r.URL.Query().Get("page"))
	data := listingData{
		User: optionalUser(r),
		Page: paginate(entries, pageNumber, pageSize),
	}
	template.RenderWithBase(w, "index.html", data)
}

// tagHandler lists entries whose tag label contains the given text.
func tagHandler(w http.ResponseWriter, r *http.Request) {
	label := r.PathValue("label")
	entries, err := listByTag(label)
	if err != nil {
		httputil.InternalServerError(w, "Could not load entries", err)
		return
	}

	pageNumber, _ := strconv.Atoi(r.URL.Query().Get("page"))
	data := listingData{
		User: optionalUser(r),
		Page: paginate(entries, pageNumber, pageSize),
		Tag:  label,
	}
	template.RenderWithBase(w, "tag.html", data)
}

// detailHandler serves a single entry.
func detailHandler(w http.ResponseWriter, r *http.Request) {
	id, err := entryIDFromPath(r)
	if err != nil {
		httputil.BadRequest(w, "Invalid entry id")
		return
	}

	entry, err := getEntryByID(id)
	if err != nil {
		httputil.WriteError(w, "Entry not found", httputil.StatusFromError(err), err)
		return
	}

	template.RenderWithBase(w, "detail.html", formData{User: optionalUser(r), Entry: entry})
}

// registerHandler serves the registration page and creates new users.
func registerHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		template.RenderWithBase(w, "register.html", formData{})
		return
	}

	req := validation.RegisterRequest{
		Username:  r.FormValue("username"),
		Email:     r.FormValue("email"),
		Password:  r.FormValue("password"),
		Password2: r.FormValue("password2"),
	}
	if v := validation.ValidateRegistration(req); v.HasErrors() {
		w.WriteHeader(http.StatusBadRequest)
		template.RenderWithBase(w, "register.html", formData{Error: v.FirstError().Error()})
		return
	}

	user, err := createUser(req.Username, req.Email, req.Password)
	if err != nil {
		if apperr.IsConflict(err) {
			w.WriteHeader(http.StatusConflict)
			template.RenderWithBase(w, "register.html", formData{Error: err.Error()})
			return
		}
		httputil.InternalServerError(w, "Could not register", err)
		return
	}

	logger.Info("New user registered: %s", user.Username)
	if err := createSession(w, user); err != nil {
		logger.Error("Could not create session after registration", err)
	}
	http.Redirect(w, r, "/entries", http.StatusSeeOther)
}

// loginHandler serves the login page and handles login requests.
func loginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		template.RenderWithBase(w, "login.html", formData{})
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	clientIP := getClientIP(r)

	limited, timeLeft, err := checkRateLimitByEmail(email)
	if err != nil {
		httputil.InternalServerError(w, "Could not check rate limit", err)
		return
	}
	if limited {
		logger.Security("rate limited login", map[string]interface{}{"email": email, "ip": clientIP})
		httputil.WriteError(w, "Too many failed attempts, try again in "+timeLeft.Round(time.Second).String(), http.StatusTooManyRequests, nil)
		return
	}

	user, err := authenticateUser(email, password)
	if err != nil {
		recordLoginAttempt(email, clientIP, false)
		logger.Security("failed login", map[string]interface{}{"email": email, "ip": clientIP})
		w.WriteHeader(http.StatusUnauthorized)
		template.RenderWithBase(w, "login.html", formData{Error: "Your email or password doesn't match"})
		return
	}

	recordLoginAttempt(email, clientIP, true)
	if err := createSession(w, user); err != nil {
		httputil.InternalServerError(w, "Could not create session", err)
		return
	}
	http.Redirect(w, r, "/entries", http.StatusSeeOther)
}

// logoutHandler clears the user's session.
func logoutHandler(w http.ResponseWriter, r *http.Request) {
	clearSession(w, r)
	http.Redirect(w, r, "/entries", http.StatusSeeOther)
}

// newEntryHandler serves the new-entry form and creates entries.
func newEntryHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok || user == nil {
		httputil.Unauthorized(w, "")
		return
	}

	if r.Method != http.MethodPost {
		template.RenderWithBase(w, "new.html", formData{User: user})
		return
	}

	timeSpent, _ := strconv.Atoi(r.FormValue("time_spent"))
	_, err := createEntry(user,
		r.FormValue("title"),
		r.FormValue("content"),
		r.FormValue("resources"),
		timeSpent,
		r.FormValue("tag"),
	)
	if err != nil {
		if apperr.IsValidation(err) {
			w.WriteHeader(http.StatusBadRequest)
			template.RenderWithBase(w, "new.html", formData{User: user, Error: err.Error()})
			return
		}
		httputil.InternalServerError(w, "Could not create entry", err)
		return
	}

	http.Redirect(w, r, "/entries", http.StatusSeeOther)
}

// editEntryHandler serves the edit form and applies updates. Only the owner
// may edit; everyone else gets a 403 and missing entries get a 404.
func editEntryHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok || user == nil {
		httputil.Unauthorized(w, "")
		return
	}

	id, err := entryIDFromPath(r)
	if err != nil {
		httputil.BadRequest(w, "Invalid entry id")
		return
	}

	if r.Method != http.MethodPost {
		entry, err := getEntryByID(id)
		if err != nil {
			httputil.WriteError(w, "Entry not found", httputil.StatusFromError(err), err)
			return
		}
		if !canModify(user.ID, entry) {
			httputil.Forbidden(w, "You can't edit someone else's entry")
			return
		}
		template.RenderWithBase(w, "edit.html", formData{User: user, Entry: entry})
		return
	}

	timeSpent, _ := strconv.Atoi(r.FormValue("time_spent"))
	_, err = updateEntry(id, user,
		r.FormValue("title"),
		r.FormValue("content"),
		r.FormValue("resources"),
		timeSpent,
		r.FormValue("tag"),
	)
	if err != nil {
		status := httputil.StatusFromError(err)
		if status == http.StatusForbidden {
			logger.Security("blocked entry edit", map[string]interface{}{"user": user.ID, "entry": id})
		}
		httputil.WriteError(w, err.Error(), status, err)
		return
	}

	http.Redirect(w, r, "/entries", http.StatusSeeOther)
}

// deleteEntryHandler deletes an entry. Only the owner may delete.
func deleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := getUserFromContext(r)
	if !ok || user == nil {
		httputil.Unauthorized(w, "")
		return
	}

	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	id, err := entryIDFromPath(r)
	if err != nil {
		httputil.BadRequest(w, "Invalid entry id")
		return
	}

	if err := deleteEntry(id, user); err != nil {
		status := httputil.StatusFromError(err)
		if status == http.StatusForbidden {
			logger.Security("blocked entry delete", map[string]interface{}{"user": user.ID, "entry": id})
		}
		httputil.WriteError(w, err.Error(), status, err)
		return
	}

	http.Redirect(w, r, "/entries", http.StatusSeeOther)
}
