package dto

type NavItem struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

type NavResponse struct {
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

type PanelResponse struct {
	Section  string `json:"section"`
	Title    string `json:"title"`
	Endpoint string `json:"endpoint"`
}
