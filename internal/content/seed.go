package content

import "time"

// Seed defaults shown on a fresh install, used whenever a collection's
// store slot is empty or unparsable.

// DefaultNotices returns the seed notice list.
func DefaultNotices() []Notice {
	return []Notice{
		{ID: "1", Text: "Welcome to V-MAC! We are dedicated to animal welfare."},
		{ID: "2", Text: "Upcoming Free Vaccination Clinic on December 15th."},
	}
}

// DefaultAbout returns the seed about section.
func DefaultAbout() AboutData {
	return AboutData{
		Image: "https://picsum.photos/800/600?animal=1",
		Text: "Veterinary Medicine and Animal Welfare Club (V-MAC) is a community of " +
			"passionate individuals at Gono University. Our mission is to promote animal " +
			"health and advocate for the well-being of all creatures through education, " +
			"service, and medical excellence.",
	}
}

// DefaultGallery returns the seed gallery posts, stamped relative to now.
func DefaultGallery(now time.Time) []GalleryItem {
	ms := now.UnixMilli()
	return []GalleryItem{
		{ID: "1", Image: "https://picsum.photos/600/400?vet=1", Caption: "Field clinic visit 2024", Timestamp: ms - 100000},
		{ID: "2", Image: "https://picsum.photos/600/400?vet=2", Caption: "Rescue operations in Savar", Timestamp: ms - 500000},
	}
}

// DefaultCommittee returns the seed roster.
func DefaultCommittee() []CommitteeMember {
	return []CommitteeMember{
		{ID: "1", Name: "Dr. Sarah Ahmed", Image: "https://picsum.photos/200/200?person=1", Designation: "President", Position: 1},
		{ID: "2", Name: "John Doe", Image: "https://picsum.photos/200/200?person=2", Designation: "General Secretary", Position: 2},
		{ID: "3", Name: "Emily White", Image: "https://picsum.photos/200/200?person=3", Designation: "Volunteer Lead", Position: 3},
	}
}

// DefaultArticles returns the seed articles feed, stamped at now.
func DefaultArticles(now time.Time) []Article {
	return []Article{
		{
			ID:     "1",
			Title:  "Basic First Aid for Street Dogs",
			Author: "Admin",
			Content: "Learn how to provide immediate care to injured animals on the " +
				"streets before getting professional help...",
			Image:     "https://picsum.photos/800/500?dog=1",
			Date:      FormatDate(now),
			Timestamp: now.UnixMilli(),
		},
	}
}

// FormatDate renders the display date the way the site shows it
// (M/D/YYYY).
func FormatDate(t time.Time) string {
	return t.Format("1/2/2006")
}
