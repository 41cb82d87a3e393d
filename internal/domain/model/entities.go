package model

// Agent is a listed estate agent profile.
type Agent struct {
	Meta
	ActiveFlag
	Ordering
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Title    string `json:"title,omitempty"`
	Bio      string `json:"bio,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// Property is a marketing listing. AgentID is optional and unvalidated;
// a property may be agent-less.
type Property struct {
	Meta
	ActiveFlag
	Ordering
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price,omitempty"`
	Bedrooms    int      `json:"bedrooms,omitempty"`
	Bathrooms   int      `json:"bathrooms,omitempty"`
	AreaSqm     float64  `json:"areaSqm,omitempty"`
	Location    string   `json:"location,omitempty"`
	Images      []string `json:"images,omitempty"`
	AgentID     string   `json:"agentId,omitempty"`
	IsFeatured  bool     `json:"isFeatured,omitempty"`

	// AgentName is denormalized onto the record at read time by the query
	// layer; it is null when the agent reference does not resolve.
	AgentName *string `json:"agentName,omitempty"`
}

// Featured reports whether the property is pinned ahead of the standard order.
func (p Property) Featured() bool { return p.IsFeatured }

// Review is a customer review, optionally tied to an agent.
type Review struct {
	Meta
	ActiveFlag
	Ordering
	AuthorName string `json:"authorName"`
	Rating     int    `json:"rating,omitempty"`
	Comment    string `json:"comment,omitempty"`
	AgentID    string `json:"agentId,omitempty"`

	AgentName *string `json:"agentName,omitempty"`
}

// Booking is a publicly submitted viewing request.
type Booking struct {
	Meta
	ReadFlag
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Date       string `json:"date,omitempty"`
	Message    string `json:"message,omitempty"`
	PropertyID string `json:"propertyId,omitempty"`
}

// Buyer is a registered entry in the buyer-matching registry.
type Buyer struct {
	Meta
	ActiveFlag
	Name              string  `json:"name"`
	Email             string  `json:"email,omitempty"`
	Phone             string  `json:"phone,omitempty"`
	Budget            float64 `json:"budget,omitempty"`
	PreferredLocation string  `json:"preferredLocation,omitempty"`
	Notes             string  `json:"notes,omitempty"`
}

// BuyerEnquiry is an enquiry raised for a registered buyer. BuyerID is
// required and must resolve at creation time.
type BuyerEnquiry struct {
	Meta
	ReadFlag
	BuyerID   string `json:"buyerId"`
	AgentName string `json:"agentName,omitempty"`
	Message   string `json:"message,omitempty"`
}

// GalleryItem is an image in the marketing gallery.
type GalleryItem struct {
	Meta
	ActiveFlag
	Ordering
	Title    string `json:"title,omitempty"`
	ImageURL string `json:"imageUrl"`
	Category string `json:"category,omitempty"`
}

// Journey is a customer-journey story shown on the marketing site.
type Journey struct {
	Meta
	ActiveFlag
	Ordering
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Investor is a testimonial or partner entry.
type Investor struct {
	Meta
	ActiveFlag
	Ordering
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Quote    string `json:"quote,omitempty"`
	PhotoURL string `json:"photoUrl,omitempty"`
}

// ContactMessage is a publicly submitted contact-form message, optionally
// addressed to an agent.
type ContactMessage struct {
	Meta
	ReadFlag
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	AgentID string `json:"agentId,omitempty"`
}

// FreeGuide is a downloadable lead-funnel guide.
type FreeGuide struct {
	Meta
	ActiveFlag
	Ordering
	Title         string `json:"title"`
	Description   string `json:"description,omitempty"`
	FileURL       string `json:"fileUrl,omitempty"`
	CoverImageURL string `json:"coverImageUrl,omitempty"`
}

// GuideDownload records a lead downloading a guide. GuideID is required
// and must resolve at creation time.
type GuideDownload struct {
	Meta
	ReadFlag
	GuideID string `json:"guideId"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
}

// ContactInfo is the singleton site contact block.
type ContactInfo struct {
	Meta
	Address     string            `json:"address,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Email       string            `json:"email,omitempty"`
	WhatsApp    string            `json:"whatsapp,omitempty"`
	MapEmbedURL string            `json:"mapEmbedUrl,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}

// Admin is a back-office user. PasswordHash persists to the snapshot but
// must be cleared before any response leaves the admin surface.
type Admin struct {
	Meta
	ActiveFlag
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash,omitempty"`
	Name         string `json:"name,omitempty"`
	Role         string `json:"role,omitempty"`
	LastLoginAt  string `json:"lastLoginAt,omitempty"`
}

// SiteSettings is the singleton site configuration block.
type SiteSettings struct {
	Meta
	SiteName     string `json:"siteName,omitempty"`
	Tagline      string `json:"tagline,omitempty"`
	HeroImageURL string `json:"heroImageUrl,omitempty"`
	AboutText    string `json:"aboutText,omitempty"`
	FooterText   string `json:"footerText,omitempty"`
}
