package abstraction

import (
	"hotelmedia/internal/domain/dto"
	"hotelmedia/pkg/i18n"
)

type Navigator interface {
	Nav(loc *i18n.Localizer, active string) dto.NavResponse
	Panel(loc *i18n.Localizer, name string) dto.PanelResponse
}
