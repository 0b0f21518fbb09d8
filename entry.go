// entry.go
package main

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"learning_journal/pkg/apperr"
	"learning_journal/pkg/validation"
)

// canModify reports whether the acting user owns the given entry.
// Pure predicate: it never writes and never errors. Callers decide how to
// respond when it returns false. The check runs against the loaded entry's
// concrete owner id, identically before edit and before delete.
func canModify(actingUserID int, entry *Entry) bool {
	return entry != nil && entry.UserID == actingUserID
}

// validateEntryInput normalizes and validates entry fields shared by create
// and update. Returns the normalized title, resources and tag label.
func validateEntryInput(title, resources, content string, timeSpent int, tagLabel string) (string, string, string, error) {
	normTitle := normalizeTitle(title)
	normTag := normalizeTitle(tagLabel)
	normResources := strings.TrimSpace(resources)

	v := validation.ValidateEntry(validation.EntryRequest{
		Title:     normTitle,
		Content:   content,
		Resources: normResources,
		TimeSpent: timeSpent,
		Tag:       normTag,
	})
	if v.HasErrors() {
		fe := v.FirstError()
		return "", "", "", apperr.Validation(fe.Field, fe.Message)
	}

	return normTitle, normResources, normTag, nil
}

// createEntry persists a new entry together with its tag in one transaction.
// Title and tag label are trimmed and title-cased; resources are trimmed.
func createEntry(owner *User, title, content, resources string, timeSpent int, tagLabel string) (*Entry, error) {
	normTitle, normResources, normTag, err := validateEntryInput(title, resources, content, timeSpent, tagLabel)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	res, err := tx.Exec(
		"INSERT INTO entries (title, content, resources, time_spent, date_created, date_modified, user_id) VALUES (?, ?, ?, ?, ?, ?, ?)",
		normTitle, content, normResources, timeSpent, now, now, owner.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry: %w", err)
	}

	entryID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get new entry id: %w", err)
	}

	if normTag != "" {
		_, err = tx.Exec("INSERT INTO tags (entry_id, label) VALUES (?, ?)", entryID, normTag)
		if err != nil {
			return nil, fmt.Errorf("failed to insert tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit entry: %w", err)
	}

	return &Entry{
		ID:           int(entryID),
		Title:        normTitle,
		Content:      content,
		Resources:    normResources,
		TimeSpent:    timeSpent,
		DateCreated:  now,
		DateModified: now,
		UserID:       owner.ID,
		Username:     owner.Username,
		Tag:          normTag,
	}, nil
}

// updateEntry edits an entry and its tag atomically. The acting user must be
// the owner; the date-modified timestamp is set to now and the title and tag
// are re-normalized exactly as on creation.
func updateEntry(entryID int, actingUser *User, title, content, resources string, timeSpent int, tagLabel string) (*Entry, error) {
	entry, err := getEntryByID(entryID)
	if err != nil {
		return nil, err
	}

	if !canModify(actingUser.ID, entry) {
		return nil, apperr.Forbidden(actingUser.ID, entryID)
	}

	normTitle, normResources, normTag, err := validateEntryInput(title, resources, content, timeSpent, tagLabel)
	if err != nil {
		return nil, err
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.Exec(
		"UPDATE entries SET title = ?, content = ?, resources = ?, time_spent = ?, date_modified = ? WHERE id = ?",
		normTitle, content, normResources, timeSpent, now, entryID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	// Re-link the tag: clear the old row, insert the new label.
	_, err = tx.Exec("DELETE FROM tags WHERE entry_id = ?", entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to clear existing tag: %w", err)
	}
	if normTag != "" {
		_, err = tx.Exec("INSERT INTO tags (entry_id, label) VALUES (?, ?)", entryID, normTag)
		if err != nil {
			return nil, fmt.Errorf("failed to insert tag: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit entry update: %w", err)
	}

	entry.Title = normTitle
	entry.Content = content
	entry.Resources = normResources
	entry.TimeSpent = timeSpent
	entry.DateModified = now
	entry.Tag = normTag
	return entry, nil
}

// deleteEntry removes an entry and its tag atomically. The acting user must
// be the owner.
func deleteEntry(entryID int, actingUser *User) error {
	entry, err := getEntryByID(entryID)
	if err != nil {
		return err
	}

	if !canModify(actingUser.ID, entry) {
		return apperr.Forbidden(actingUser.ID, entryID)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// The FK cascade also covers the tag; deleting it explicitly keeps the
	// entry+tag pair a single visible unit of work.
	_, err = tx.Exec("DELETE FROM tags WHERE entry_id = ?", entryID)
	if err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}
	_, err = tx.Exec("DELETE FROM entries WHERE id = ?", entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return tx.Commit()
}

const entrySelect = `
	SELECT
		e.id, e.title, e.content, e.resources, e.time_spent,
		e.date_created, e.date_modified, e.user_id,
		u.username, COALESCE(t.label, '') AS tag
	FROM entries e
	JOIN users u ON u.id = e.user_id
	LEFT JOIN tags t ON t.entry_id = e.id
`

func scanEntry(row *sql.Row) (*Entry, error) {
	var e Entry
	err := row.Scan(
		&e.ID, &e.Title, &e.Content, &e.Resources, &e.TimeSpent,
		&e.DateCreated, &e.DateModified, &e.UserID, &e.Username, &e.Tag,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		err := rows.Scan(
			&e.ID, &e.Title, &e.Content, &e.Resources, &e.TimeSpent,
			&e.DateCreated, &e.DateModified, &e.UserID, &e.Username, &e.Tag,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, e)
	}

	if entries == nil {
		return []Entry{}, nil
	}
	return entries, nil
}

// getEntryByID retrieves a single entry with its tag and author.
func getEntryByID(id int) (*Entry, error) {
	entry, err := scanEntry(db.QueryRow(entrySelect+" WHERE e.id = ?", id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.NotFound("entry", id)
		}
		return nil, fmt.Errorf("failed to query entry: %w", err)
	}
	return entry, nil
}

// listAll retrieves every entry, newest first.
func listAll() ([]Entry, error) {
	rows, err := db.Query(entrySelect + " ORDER BY e.date_created DESC, e.id DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	return scanEntries(rows)
}

// listByTag retrieves entries whose tag label contains the given text,
// case-insensitively, newest first.
func listByTag(label string) ([]Entry, error) {
	rows, err := db.Query(
		entrySelect+" WHERE t.label LIKE ? COLLATE NOCASE ORDER BY e.date_created DESC, e.id DESC",
		"%"+strings.TrimSpace(label)+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries by tag: %w", err)
	}
	return scanEntries(rows)
}
