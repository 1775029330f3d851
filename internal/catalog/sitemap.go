// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	"encoding/xml"
	"log/slog"
	"strconv"
)

// Per-level sitemap priorities. Only the static homepage gets 1.0.
const (
	PriorityHome        = 1.0
	PriorityStatic      = 0.8
	PriorityNavbar      = 0.9
	PriorityCategory    = 0.8
	PrioritySubCategory = 0.7
	PriorityProduct     = 0.7
)

// Entry is one sitemap line: a canonical URL with crawl hints.
type Entry struct {
	Loc        string
	ChangeFreq string
	Priority   float64
}

// staticPages are the fixed marketing pages emitted before catalog nodes.
var staticPages = []Entry{
	{Loc: "/", ChangeFreq: "daily", Priority: PriorityHome},
	{Loc: "/about", ChangeFreq: "monthly", Priority: PriorityStatic},
	{Loc: "/contact", ChangeFreq: "monthly", Priority: PriorityStatic},
}

// Sitemap walks the hierarchy in nesting order and emits one entry per
// active node whose full ancestor chain resolves. Nodes with broken
// chains are skipped and logged; a bad node never aborts the projection.
// Products without a subcategory have no canonical URL and are omitted.
func (s *Snapshot) Sitemap(baseURL string) []Entry {
	entries := make([]Entry, 0, len(staticPages)+len(s.Navbars)+len(s.Categories)+len(s.SubCategories)+len(s.Products))

	for _, p := range staticPages {
		entries = append(entries, Entry{Loc: baseURL + p.Loc, ChangeFreq: p.ChangeFreq, Priority: p.Priority})
	}

	for i := range s.Navbars {
		navbar := &s.Navbars[i]
		if !navbar.IsActive {
			continue
		}
		entries = append(entries, Entry{
			Loc:        baseURL + s.NavbarURL(navbar),
			ChangeFreq: "weekly",
			Priority:   PriorityNavbar,
		})

		for _, cat := range s.CategoriesOf(navbar.ID) {
			if !cat.IsActive {
				continue
			}
			catURL, err := s.CategoryURL(cat)
			if err != nil {
				slog.Warn("sitemap: skipping category", "id", cat.ID, "slug", cat.Slug, "error", err)
				continue
			}
			entries = append(entries, Entry{
				Loc:        baseURL + catURL,
				ChangeFreq: "weekly",
				Priority:   PriorityCategory,
			})

			for _, sub := range s.SubCategoriesOf(cat.ID) {
				if !sub.IsActive {
					continue
				}
				subURL, err := s.SubCategoryURL(sub)
				if err != nil {
					slog.Warn("sitemap: skipping subcategory", "id", sub.ID, "slug", sub.Slug, "error", err)
					continue
				}
				entries = append(entries, Entry{
					Loc:        baseURL + subURL,
					ChangeFreq: "weekly",
					Priority:   PrioritySubCategory,
				})

				for _, prod := range s.ProductsOf(sub.ID) {
					if !prod.IsActive {
						continue
					}
					prodURL, err := s.ProductURL(prod)
					if err != nil {
						slog.Warn("sitemap: skipping product", "id", prod.ID, "slug", prod.Slug, "error", err)
						continue
					}
					entries = append(entries, Entry{
						Loc:        baseURL + prodURL,
						ChangeFreq: "weekly",
						Priority:   PriorityProduct,
					})
				}
			}
		}
	}

	return entries
}

// urlSet is the standard sitemap XML document shape.
type urlSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []urlTag `xml:"url"`
}

type urlTag struct {
	Loc        string `xml:"loc"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// RenderSitemapXML serializes entries as a standard
// <urlset><url><loc/><changefreq/><priority/></url>...</urlset> document
// with the XML declaration prepended.
func RenderSitemapXML(entries []Entry) ([]byte, error) {
	set := urlSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]urlTag, 0, len(entries)),
	}
	for _, e := range entries {
		set.URLs = append(set.URLs, urlTag{
			Loc:        e.Loc,
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
