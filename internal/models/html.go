package models

// IndexData is the data rendered by the listing page template.
// It is exported so that the HTML template engine can render it.
type IndexData struct {
	Keys    []IndexRow
	Message string
}

// IndexRow is one vault entry rendered on the listing page.
type IndexRow struct {
	Name   string
	Domain string
	Image  string
}

// GalleryData is the data rendered by the image picker template.
type GalleryData struct {
	Query     string
	ImageURLs []string
	NextStart int
	PrevStart int
	HasNext   bool
	HasPrev   bool
}
