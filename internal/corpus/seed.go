// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package corpus

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lingopress/internal/slug"
)

// seedText is a piece of seed text with an optional Spanish rendition.
// Locales without a rendition use the English text.
type seedText struct {
	en, es string
}

func (t seedText) in(locale string) string {
	if locale == "es" && t.es != "" {
		return t.es
	}
	return t.en
}

type seedCategory struct {
	key    string
	name   seedText
	desc   seedText
	parent string
}

type seedArticle struct {
	title      seedText
	desc       seedText
	categories []string
	tags       []string
	featured   bool
	draft      bool
}

var seedCategories = []seedCategory{
	{key: "programming", name: seedText{"Programming", "Programación"}, desc: seedText{"Writing software.", "Escribir software."}},
	{key: "go", name: seedText{"Go", "Go"}, desc: seedText{"The Go language.", "El lenguaje Go."}, parent: "programming"},
	{key: "web", name: seedText{"Web Development", "Desarrollo web"}, desc: seedText{"Building for the browser.", "Construir para el navegador."}, parent: "programming"},
	{key: "operations", name: seedText{"Operations", "Operaciones"}, desc: seedText{"Running software in production.", "Ejecutar software en producción."}},
}

var seedTags = []struct {
	key  string
	name seedText
}{
	{key: "golang", name: seedText{"Golang", "Golang"}},
	{key: "htmx", name: seedText{"HTMX", "HTMX"}},
	{key: "kubernetes", name: seedText{"Kubernetes", "Kubernetes"}},
	{key: "testing", name: seedText{"Testing", "Pruebas"}},
	{key: "performance", name: seedText{"Performance", "Rendimiento"}},
}

var seedArticles = []seedArticle{
	{title: seedText{"Getting Started with Go", "Primeros pasos con Go"}, desc: seedText{"Install the toolchain and write your first program.", "Instala las herramientas y escribe tu primer programa."}, categories: []string{"go"}, tags: []string{"golang"}, featured: true},
	{title: seedText{"Table-Driven Tests in Go", "Pruebas dirigidas por tablas en Go"}, desc: seedText{"Structure unit tests as data.", "Estructura las pruebas unitarias como datos."}, categories: []string{"go"}, tags: []string{"golang", "testing"}},
	{title: seedText{"HTMX for Server-Rendered Apps", "HTMX para aplicaciones renderizadas en el servidor"}, desc: seedText{"Partial page updates without a frontend framework.", "Actualizaciones parciales sin un framework de frontend."}, categories: []string{"web"}, tags: []string{"htmx"}, featured: true},
	{title: seedText{"Deploying Go Services on Kubernetes", "Desplegar servicios Go en Kubernetes"}, desc: seedText{"Containers, health checks and rollouts.", "Contenedores, chequeos de salud y despliegues."}, categories: []string{"operations", "go"}, tags: []string{"kubernetes", "golang"}},
	{title: seedText{"Profiling Hot Paths", "Perfilado de rutas críticas"}, desc: seedText{"Find and fix CPU and memory bottlenecks.", "Encuentra y corrige cuellos de botella de CPU y memoria."}, categories: []string{"go"}, tags: []string{"performance", "golang"}},
	{title: seedText{"Caching Rendered Pages", "Caché de páginas renderizadas"}, desc: seedText{"A read-through cache in front of your templates.", "Una caché de lectura delante de tus plantillas."}, categories: []string{"web"}, tags: []string{"performance"}, featured: true},
	{title: seedText{"Writing Readable Tests", "Escribir pruebas legibles"}, desc: seedText{"Names, helpers and failure messages.", "Nombres, ayudantes y mensajes de error."}, categories: []string{"programming"}, tags: []string{"testing"}},
	{title: seedText{"Zero-Downtime Deployments", "Despliegues sin interrupciones"}, desc: seedText{"Rolling updates and graceful shutdown.", "Actualizaciones graduales y apagado ordenado."}, categories: []string{"operations"}, tags: []string{"kubernetes"}},
	{title: seedText{"Accessible Forms", "Formularios accesibles"}, desc: seedText{"Labels, errors and keyboard navigation.", "Etiquetas, errores y navegación por teclado."}, categories: []string{"web"}, tags: []string{"htmx"}},
	{title: seedText{"Unreleased Draft", "Borrador sin publicar"}, desc: seedText{"Not visible anywhere.", "No visible en ningún lugar."}, categories: []string{"go"}, tags: []string{"golang"}, draft: true},
}

// seedEpoch is the publication date of the oldest seed article.
var seedEpoch = time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)

// Seed builds a deterministic development corpus with one article row per
// seed article and locale. Ids are name-based so repeated runs agree.
func Seed(locales []string) *Corpus {
	c := &Corpus{}

	for _, sc := range seedCategories {
		row := CategoryRow{
			ID:            seedID("category", sc.key),
			Translations:  map[string]CategoryTranslation{},
			ImageURL:      "/static/categories/" + sc.key + ".webp",
			ImageAltTitle: map[string]string{},
			Slugs:         map[string]string{},
		}
		if sc.parent != "" {
			row.ParentID = seedID("category", sc.parent)
		}
		for _, l := range locales {
			name := sc.name.in(l)
			row.Translations[l] = CategoryTranslation{Name: name, Description: sc.desc.in(l)}
			row.ImageAltTitle[l] = name
			row.Slugs[l] = slug.Generate(name)
		}
		c.Categories = append(c.Categories, row)
	}

	for _, st := range seedTags {
		row := TagRow{
			ID:           seedID("tag", st.key),
			Translations: map[string]TagTranslation{},
			Slugs:        map[string]string{},
		}
		for _, l := range locales {
			row.Translations[l] = TagTranslation{Name: st.name.in(l)}
			row.Slugs[l] = slug.Generate(st.name.in(l))
		}
		c.Tags = append(c.Tags, row)
	}

	for i, sa := range seedArticles {
		id := seedID("article", sa.title.en)
		slugs := make(map[string]string, len(locales))
		for _, l := range locales {
			slugs[l] = slug.Generate(sa.title.in(l))
		}

		var cats, tags []string
		for _, k := range sa.categories {
			cats = append(cats, seedID("category", k))
		}
		for _, k := range sa.tags {
			tags = append(tags, seedID("tag", k))
		}

		status := "published"
		if sa.draft {
			status = "draft"
		}
		published := seedEpoch.Add(time.Duration(i) * 72 * time.Hour)

		for _, l := range locales {
			c.Articles = append(c.Articles, ArticleRow{
				ID:            id,
				Locale:        l,
				Slug:          slugs[l],
				Slugs:         slugs,
				Title:         sa.title.in(l),
				Description:   sa.desc.in(l),
				ImageURL:      "/static/articles/" + slugs["en"] + ".webp",
				ImageAltTitle: sa.title.in(l),
				AuthorName:    "Lingopress Team",
				PublishedAt:   published,
				UpdatedAt:     published.Add(24 * time.Hour),
				Relevance:     float64(len(seedArticles) - i),
				Categories:    cats,
				Tags:          tags,
				Status:        status,
				IsFeatured:    sa.featured,
				ReadingTime:   3 + i%5,
			})
		}
	}

	slog.Info("development corpus seeded",
		"locales", locales,
		"articles", len(c.Articles),
		"categories", len(c.Categories),
		"tags", len(c.Tags),
	)
	return c
}

func seedID(kind, key string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://lingopress.local/"+kind+"/"+key)).String()
}
