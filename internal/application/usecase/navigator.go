package usecase

import (
	"hotelmedia/internal/domain/dto"
	"hotelmedia/pkg/i18n"
)

const SectionDashboard = "dashboard"

type section struct {
	name     string
	label    i18n.Key
	endpoint string
}

// sections is the sidebar in display order.
var sections = []section{
	{SectionDashboard, i18n.NavDashboard, ""},
	{"rooms", i18n.NavRooms, "/rooms"},
	{"services", i18n.NavServices, "/admin/collections/service"},
	{"gallery", i18n.NavGallery, "/admin/collections/gallery"},
	{"bookings", i18n.NavBookings, ""},
	{"pricing", i18n.NavPricing, ""},
	{"settings", i18n.NavSettings, ""},
	{"media", i18n.NavMedia, "/admin/media"},
}

// Navigator resolves admin sections. It carries no state.
type Navigator struct{}

func NewNavigator() *Navigator {
	return &Navigator{}
}

func (n *Navigator) Nav(loc *i18n.Localizer, active string) dto.NavResponse {
	active = n.resolve(active).name

	items := make([]dto.NavItem, 0, len(sections))
	for _, s := range sections {
		items = append(items, dto.NavItem{
			Name:   loc.T(s.label),
			Path:   sectionPath(s.name),
			Active: s.name == active,
		})
	}

	return dto.NavResponse{
		Title: loc.T(i18n.NavAdminPanel),
		Items: items,
	}
}

// Panel dispatches a section name to its panel. Unknown names fall back to the dashboard.
func (n *Navigator) Panel(loc *i18n.Localizer, name string) dto.PanelResponse {
	s := n.resolve(name)

	return dto.PanelResponse{
		Section:  s.name,
		Title:    loc.T(s.label),
		Endpoint: s.endpoint,
	}
}

func (n *Navigator) resolve(name string) section {
	for _, s := range sections {
		if s.name == name {
			return s
		}
	}

	return sections[0]
}

func sectionPath(name string) string {
	if name == SectionDashboard {
		return "/admin"
	}

	return "/admin/" + name
}
