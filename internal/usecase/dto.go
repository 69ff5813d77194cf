// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package usecase

import (
	"time"

	"lingopress/internal/models"
)

// ArticleDTO is the presentation form of an article. Categories and Tags
// are null unless the caller asked for them.
type ArticleDTO struct {
	ID            string               `json:"id"`
	Slug          string               `json:"slug"`
	Locale        string               `json:"locale"`
	Title         string               `json:"title"`
	Description   string               `json:"description"`
	ImageURL      string               `json:"image_url"`
	ImageAltTitle string               `json:"image_alt_title"`
	AuthorName    string               `json:"author_name"`
	ReadingTime   int                  `json:"reading_time"`
	PublishedAt   string               `json:"published_at"`
	UpdatedAt     string               `json:"updated_at"`
	IsFeatured    bool                 `json:"is_featured"`
	Categories    []CategorySummaryDTO `json:"categories"`
	Tags          []TagSummaryDTO      `json:"tags"`
}

// ArticleDetailDTO is a single article with its compiled body.
type ArticleDetailDTO struct {
	ArticleDTO
	Body string `json:"body"`
}

// CriteriaDTO echoes the normalized criteria a listing was built from.
type CriteriaDTO struct {
	Locale     string `json:"locale"`
	Page       int    `json:"page"`
	Size       int    `json:"size"`
	SortBy     string `json:"sort_by"`
	SortOrder  string `json:"sort_order"`
	CategoryID string `json:"category_id,omitempty"`
	TagID      string `json:"tag_id,omitempty"`
	Title      string `json:"title,omitempty"`
}

// ArticlesPageDTO is one page of an article listing.
type ArticlesPageDTO struct {
	Items      []ArticleDTO `json:"items"`
	TotalItems int          `json:"total_items"`
	Page       int          `json:"page"`
	PageSize   int          `json:"page_size"`
	PageCount  int          `json:"page_count"`
	HasNext    bool         `json:"has_next"`
	HasPrev    bool         `json:"has_prev"`
	Criteria   CriteriaDTO  `json:"criteria"`
}

// CategorySummaryDTO is a category reference nested in another DTO.
type CategorySummaryDTO struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// CategoryDTO is the presentation form of a category.
type CategoryDTO struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	ImageURL      string `json:"image_url"`
	ImageAltTitle string `json:"image_alt_title"`
	ParentID      string `json:"parent_id,omitempty"`
	ArticlesCount int    `json:"articles_count"`
}

// CategoryDetailDTO is a category with its parent and children.
type CategoryDetailDTO struct {
	CategoryDTO
	Parent   *CategorySummaryDTO  `json:"parent"`
	Children []CategorySummaryDTO `json:"children"`
}

// TagSummaryDTO is a tag reference nested in another DTO.
type TagSummaryDTO struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// TagDTO is the presentation form of a tag.
type TagDTO struct {
	ID            string `json:"id"`
	Slug          string `json:"slug"`
	Name          string `json:"name"`
	ArticlesCount int    `json:"articles_count"`
}

// TranslatedSlugs maps each locale to the entity's slug in it.
type TranslatedSlugs map[string]string

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// articleToDTO flattens a. Relations are read only when requested; a
// requested relation that was not hydrated is an error.
func articleToDTO(a *models.Article, withCategories, withTags bool) (ArticleDTO, error) {
	dto := ArticleDTO{
		ID:            a.ID.String(),
		Slug:          a.Slug.String(),
		Locale:        a.Locale.String(),
		Title:         a.Title,
		Description:   a.Description,
		ImageURL:      a.ImageURL,
		ImageAltTitle: a.ImageAltTitle,
		AuthorName:    a.AuthorName,
		ReadingTime:   a.ReadingTime,
		PublishedAt:   formatTime(a.PublishedAt),
		UpdatedAt:     formatTime(a.UpdatedAt),
		IsFeatured:    a.IsFeatured,
	}

	if withCategories {
		cats, err := a.Categories.Values()
		if err != nil {
			return ArticleDTO{}, err
		}
		dto.Categories = make([]CategorySummaryDTO, 0, len(cats))
		for i := range cats {
			dto.Categories = append(dto.Categories, categorySummary(&cats[i]))
		}
	}

	if withTags {
		tags, err := a.Tags.Values()
		if err != nil {
			return ArticleDTO{}, err
		}
		dto.Tags = make([]TagSummaryDTO, 0, len(tags))
		for _, t := range tags {
			dto.Tags = append(dto.Tags, TagSummaryDTO{ID: t.ID.String(), Slug: t.Slug.String(), Name: t.Name})
		}
	}

	return dto, nil
}

func categorySummary(c *models.Category) CategorySummaryDTO {
	return CategorySummaryDTO{ID: c.ID.String(), Slug: c.Slug.String(), Name: c.Name}
}

func categoryToDTO(c *models.Category) CategoryDTO {
	dto := CategoryDTO{
		ID:            c.ID.String(),
		Slug:          c.Slug.String(),
		Name:          c.Name,
		Description:   c.Description,
		ImageURL:      c.ImageURL,
		ImageAltTitle: c.ImageAltTitle,
		ArticlesCount: c.ArticlesCount,
	}
	if c.ParentID != nil {
		dto.ParentID = c.ParentID.String()
	}
	return dto
}

func categoryDetailToDTO(c *models.Category) (CategoryDetailDTO, error) {
	parent, err := c.Parent.Value()
	if err != nil {
		return CategoryDetailDTO{}, err
	}
	children, err := c.Children.Values()
	if err != nil {
		return CategoryDetailDTO{}, err
	}

	dto := CategoryDetailDTO{
		CategoryDTO: categoryToDTO(c),
		Children:    make([]CategorySummaryDTO, 0, len(children)),
	}
	if parent != nil {
		p := categorySummary(parent)
		dto.Parent = &p
	}
	for i := range children {
		dto.Children = append(dto.Children, categorySummary(&children[i]))
	}
	return dto, nil
}

func tagToDTO(t *models.Tag) TagDTO {
	return TagDTO{
		ID:            t.ID.String(),
		Slug:          t.Slug.String(),
		Name:          t.Name,
		ArticlesCount: t.ArticlesCount,
	}
}

func slugsToDTO(m map[models.Locale]string) TranslatedSlugs {
	out := make(TranslatedSlugs, len(m))
	for l, s := range m {
		out[string(l)] = s
	}
	return out
}
