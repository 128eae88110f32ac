package dto

import "hotelmedia/pkg/i18n"

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// Notice is the toast shown to the operator after an action.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Variant     string `json:"variant"`
}

// Translator is satisfied by i18n.Localizer.
type Translator interface {
	T(key i18n.Key, args ...any) string
}

func ErrorNotice(loc Translator, description string) Notice {
	return Notice{Title: loc.T(i18n.TitleError), Description: description, Variant: VariantDestructive}
}

func SuccessNotice(title, description string) Notice {
	return Notice{Title: title, Description: description, Variant: VariantDefault}
}
