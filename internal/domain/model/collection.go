package model

// Collection names the durable unit backing one entity type. The set is
// closed and known at startup; the store rejects names outside it.
type Collection string

const (
	CollectionAgents          Collection = "agents"
	CollectionProperties      Collection = "properties"
	CollectionReviews         Collection = "reviews"
	CollectionBookings        Collection = "bookings"
	CollectionBuyers          Collection = "buyers"
	CollectionBuyerEnquiries  Collection = "buyerEnquiries"
	CollectionGalleryItems    Collection = "galleryItems"
	CollectionJourneys        Collection = "journeys"
	CollectionInvestors       Collection = "investors"
	CollectionContactMessages Collection = "contactMessages"
	CollectionFreeGuides      Collection = "freeGuides"
	CollectionGuideDownloads  Collection = "guideDownloads"
	CollectionContactInfo     Collection = "contactInfo"
	CollectionAdmins          Collection = "admins"
	CollectionSiteSettings    Collection = "siteSettings"
)

// Collections returns every known collection name.
func Collections() []Collection {
	return []Collection{
		CollectionAgents,
		CollectionProperties,
		CollectionReviews,
		CollectionBookings,
		CollectionBuyers,
		CollectionBuyerEnquiries,
		CollectionGalleryItems,
		CollectionJourneys,
		CollectionInvestors,
		CollectionContactMessages,
		CollectionFreeGuides,
		CollectionGuideDownloads,
		CollectionContactInfo,
		CollectionAdmins,
		CollectionSiteSettings,
	}
}

// NotificationCollections is the fixed set of collections feeding the unread
// badge and the notification feed.
func NotificationCollections() []Collection {
	return []Collection{
		CollectionContactMessages,
		CollectionBookings,
		CollectionGuideDownloads,
		CollectionBuyerEnquiries,
	}
}

// IsSingleton reports whether the collection holds exactly one meaningful
// record (contact info and site settings).
func (c Collection) IsSingleton() bool {
	return c == CollectionContactInfo || c == CollectionSiteSettings
}

// IsValid reports whether the name is a member of the closed collection set.
func (c Collection) IsValid() bool {
	for _, known := range Collections() {
		if c == known {
			return true
		}
	}
	return false
}
