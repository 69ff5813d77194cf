package handlers

import (
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"lingopress/internal/usecase"
)

// Validation limits for listing query parameters.
const (
	maxTitleQueryLen = 300
	maxParamLen      = 64
)

// parseArticlesQuery decodes an article listing query and returns the first
// error found. Absent page and size fall back to the first page and
// defaultSize; out-of-range values are clamped later by the use case.
func parseArticlesQuery(q url.Values, defaultSize int) (usecase.GetArticlesRequest, string) {
	req := usecase.GetArticlesRequest{
		Page:       1,
		Size:       defaultSize,
		SortBy:     q.Get("sort_by"),
		SortOrder:  q.Get("sort_order"),
		CategoryID: q.Get("category_id"),
		TagID:      q.Get("tag_id"),
		Title:      q.Get("title"),
	}

	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, "page must be an integer."
		}
		req.Page = n
	}
	if raw := q.Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return req, "size must be an integer."
		}
		req.Size = n
	}

	for name, v := range map[string]string{
		"sort_by":     req.SortBy,
		"sort_order":  req.SortOrder,
		"category_id": req.CategoryID,
		"tag_id":      req.TagID,
	} {
		if utf8.RuneCountInString(v) > maxParamLen {
			return req, name + " is too long."
		}
	}
	if utf8.RuneCountInString(req.Title) > maxTitleQueryLen {
		return req, "title is too long (max 300 characters)."
	}

	for _, inc := range strings.Split(q.Get("include"), ",") {
		switch strings.TrimSpace(inc) {
		case "":
		case "categories":
			req.IncludeCategories = true
		case "tags":
			req.IncludeTags = true
		default:
			return req, "include accepts only categories and tags."
		}
	}

	return req, ""
}
