package vault

// Key is one saved site entry. Name identifies it uniquely, Domain seeds
// the password hash and Image is the icon URL shown in the listing.
type Key struct {
	Name   string `json:"name"`
	Domain string `json:"domain"`
	Image  string `json:"image"`
}
