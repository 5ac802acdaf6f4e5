package classifier

// Category identifiers
const (
	CategoryText      = "text"
	CategoryURL       = "url"
	CategoryPhone     = "phone"
	CategoryEmail     = "email"
	CategoryAddress   = "address"
	CategoryFacebook  = "facebook"
	CategoryInstagram = "instagram"
	CategoryTikTok    = "tiktok"
	CategoryTwitter   = "twitter"
	CategorySnapchat  = "snapchat"
)

// Payload schemes for categories without a prefix template
const (
	PhoneScheme = "tel:"
	EmailScheme = "mailto:"
)

// KeyboardHint suggests which virtual keyboard fits a category
type KeyboardHint string

const (
	KeyboardDefault KeyboardHint = "default"
	KeyboardPhone   KeyboardHint = "phone"
	KeyboardEmail   KeyboardHint = "email"
	KeyboardURL     KeyboardHint = "url"
)

// Category describes one selectable content type
type Category struct {
	ID          string
	Label       string
	Placeholder string
	// Prefix is prepended to the raw input, e.g. a social profile URL stub
	Prefix   string
	Keyboard KeyboardHint
}

// HasPrefix returns true if the category uses a prefix template
func (c Category) HasPrefix() bool {
	return c.Prefix != ""
}

// catalogue is in display order; the first entry is the default selection.
var catalogue = []Category{
	{ID: CategoryText, Label: "Text", Placeholder: "Enter any text", Keyboard: KeyboardDefault},
	{ID: CategoryURL, Label: "URL", Placeholder: "https://example.com", Keyboard: KeyboardURL},
	{ID: CategoryPhone, Label: "Phone", Placeholder: "+1234567890", Keyboard: KeyboardPhone},
	{ID: CategoryEmail, Label: "Email", Placeholder: "email@example.com", Keyboard: KeyboardEmail},
	{ID: CategoryAddress, Label: "Address", Placeholder: "123 Main St, City", Keyboard: KeyboardDefault},
	{ID: CategoryFacebook, Label: "Facebook", Placeholder: "username", Prefix: "https://facebook.com/", Keyboard: KeyboardDefault},
	{ID: CategoryInstagram, Label: "Instagram", Placeholder: "username", Prefix: "https://instagram.com/", Keyboard: KeyboardDefault},
	{ID: CategoryTikTok, Label: "TikTok", Placeholder: "username", Prefix: "https://tiktok.com/@", Keyboard: KeyboardDefault},
	{ID: CategoryTwitter, Label: "Twitter", Placeholder: "username", Prefix: "https://twitter.com/", Keyboard: KeyboardDefault},
	{ID: CategorySnapchat, Label: "Snapchat", Placeholder: "username", Prefix: "https://snapchat.com/add/", Keyboard: KeyboardDefault},
}

// Categories returns the supported categories in display order
func Categories() []Category {
	out := make([]Category, len(catalogue))
	copy(out, catalogue)
	return out
}

// Default returns the category selected when the generator opens
func Default() Category {
	return catalogue[0]
}

// Lookup finds a category by ID
func Lookup(id string) (Category, bool) {
	for _, c := range catalogue {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}
