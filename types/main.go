package types

type MenuLink struct {
	Name  string `json:"name"`
	Route string `json:"route"`
}

type MainPageResponse struct {
	Result
	Icons    []MenuLink `json:"icons"`
	Sections []MenuLink `json:"sections"`
}
