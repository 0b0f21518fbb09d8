// Package template provides template rendering utilities
package template

import (
	"html/template"
	"net/http"
	"time"

	"learning_journal/pkg/logger"
)

// funcs are helpers available to every journal template.
var funcs = template.FuncMap{
	"journalDate": func(t time.Time) string {
		return t.Format("January 2, 2006")
	},
}

// Renderer handles template parsing and rendering
type Renderer struct {
	templateDir  string
	baseTemplate string
}

// NewRenderer creates a new template renderer
func NewRenderer(templateDir, baseTemplate string) *Renderer {
	return &Renderer{
		templateDir:  templateDir,
		baseTemplate: baseTemplate,
	}
}

// RenderWithBase renders a template with the base layout
func (r *Renderer) RenderWithBase(w http.ResponseWriter, name string, data interface{}) error {
	tmpl, err := template.New(r.baseTemplate).Funcs(funcs).ParseFiles(
		r.templateDir+"/"+r.baseTemplate, r.templateDir+"/"+name)
	if err != nil {
		logger.Error("Error parsing template '"+name+"'", err)
		return err
	}

	if err := tmpl.ExecuteTemplate(w, r.baseTemplate, data); err != nil {
		logger.Error("Error rendering template '"+name+"'", err)
		return err
	}
	return nil
}

// RenderStandalone renders a standalone template without base layout
func (r *Renderer) RenderStandalone(w http.ResponseWriter, name string, data interface{}) error {
	tmpl, err := template.New(name).Funcs(funcs).ParseFiles(r.templateDir + "/" + name)
	if err != nil {
		logger.Error("Error parsing standalone template '"+name+"'", err)
		return err
	}

	if err := tmpl.Execute(w, data); err != nil {
		logger.Error("Error rendering standalone template '"+name+"'", err)
		return err
	}
	return nil
}

// Global renderer instance
var DefaultRenderer *Renderer

// InitRenderer initializes the default renderer
func InitRenderer(templateDir, baseTemplate string) {
	DefaultRenderer = NewRenderer(templateDir, baseTemplate)
}

// RenderWithBase renders using the default renderer with base layout
func RenderWithBase(w http.ResponseWriter, name string, data interface{}) error {
	if DefaultRenderer == nil {
		logger.Fatal("Default renderer not initialized. Call template.InitRenderer() first", nil)
	}
	return DefaultRenderer.RenderWithBase(w, name, data)
}

// RenderStandalone renders using the default renderer without base layout
func RenderStandalone(w http.ResponseWriter, name string, data interface{}) error {
	if DefaultRenderer == nil {
		logger.Fatal("Default renderer not initialized. Call template.InitRenderer() first", nil)
	}
	return DefaultRenderer.RenderStandalone(w, name, data)
}
