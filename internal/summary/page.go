package summary

import (
	"html/template"
	"io"
	"unicode/utf8"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

// DescriptionLimit is the number of characters of a project description shown on the page.
const DescriptionLimit = 60

// OngoingLabel replaces the end date of an experience that has none.
const OngoingLabel = "Actualidad"

// Truncate cuts s to at most n characters and always appends "...", even when
// nothing was cut.
func Truncate(s string, n int) string {
	if utf8.RuneCountInString(s) > n {
		s = string([]rune(s)[:n])
	}
	return s + "..."
}

func endDate(e domain.Experience) string {
	if e.EndDate == nil {
		return OngoingLabel
	}
	return e.EndDate.String()
}

var pageTmpl = template.Must(template.New("summary").Funcs(template.FuncMap{
	"truncate": func(s string) string { return Truncate(s, DescriptionLimit) },
	"endDate":  endDate,
}).Parse(pageHTML))

type pageData struct {
	Projects    []domain.Project
	Experiences []domain.Experience
}

// Render writes the summary document with one row per project and per experience entry.
func Render(w io.Writer, projects []domain.Project, experiences []domain.Experience) error {
	return pageTmpl.Execute(w, pageData{Projects: projects, Experiences: experiences})
}

const pageHTML = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="utf-8"><title>Portafolio</title></head>
<body style='margin:0'>
<div style='font-family:sans-serif;background:linear-gradient(135deg,#0f2027,#2c5364);min-height:100vh;padding:40px;color:white;'>
  <h1 style='font-size:2.5rem;margin-bottom:1rem;text-align:center;'>Bienvenido al Backend del Portafolio</h1>
  <div style='max-width:900px;margin:0 auto;'>
    <h3 style='margin-top:2rem;font-size:1.3rem;'>Resumen de Proyectos</h3>
    <table style='width:100%;margin-bottom:2rem;background:#1a2233;border-radius:8px;overflow:hidden;'>
      <thead><tr style='background:#22304a;'><th style='padding:8px'>Título</th><th>Descripción</th><th>Enlace</th></tr></thead>
      <tbody>
{{- range .Projects}}
        <tr class='project'><td style='padding:8px'>{{.Title}}</td><td>{{truncate .Description}}</td><td>{{if .Link}}<a href="{{.Link}}" style="color:#90cdf4" target="_blank">Ver</a>{{else}}-{{end}}</td></tr>
{{- end}}
      </tbody>
    </table>
    <h3 style='margin-top:2rem;font-size:1.3rem;'>Resumen de Experiencia</h3>
    <table style='width:100%;background:#1a2233;border-radius:8px;overflow:hidden;'>
      <thead><tr style='background:#22304a;'><th style='padding:8px'>Cargo</th><th>Empresa</th><th>Inicio</th><th>Fin</th></tr></thead>
      <tbody>
{{- range .Experiences}}
        <tr class='experience'><td style='padding:8px'>{{.Position}}</td><td>{{.Company}}</td><td>{{.StartDate}}</td><td>{{endDate .}}</td></tr>
{{- end}}
      </tbody>
    </table>
  </div>
  <div style='text-align:center;margin-top:2rem;'>
    <a href='/api/' style='color:#90cdf4;font-size:1.2rem;text-decoration:underline;'>Ver endpoints de la API</a>
  </div>
  <footer style='margin-top:2rem;font-size:0.9rem;color:#cbd5e1;text-align:center;'>Desarrollado con Go + Gin</footer>
</div>
</body>
</html>
`
