package vortex

import "vortex-source/model"

const (
	baseURL  = "https://vortexscans.org"
	pageSize = 30

	defaultSortID   = "views"
	defaultLanguage = "en"
)

var sortOptions = []model.Tag{
	{ID: "follows", Title: "Most Followed"},
	{ID: "views", Title: "Most Viewed"},
	{ID: "rating", Title: "Top Rated"},
	{ID: "updated_at", Title: "Last Updated"},
	{ID: "created_at", Title: "Created At"},
}

var typeOptions = []model.Tag{
	{ID: "manga", Title: "Manga"},
	{ID: "manhwa", Title: "Manhwa"},
	{ID: "manhua", Title: "Manhua"},
	{ID: "comic", Title: "Comic"},
	{ID: "novel", Title: "Novel"},
}

var demographicOptions = []model.Tag{
	{ID: "shounen", Title: "Shounen"},
	{ID: "shoujo", Title: "Shoujo"},
	{ID: "seinen", Title: "Seinen"},
	{ID: "josei", Title: "Josei"},
}

var genreOptions = []model.Tag{
	{ID: "action", Title: "Action"},
	{ID: "adventure", Title: "Adventure"},
	{ID: "comedy", Title: "Comedy"},
	{ID: "drama", Title: "Drama"},
	{ID: "fantasy", Title: "Fantasy"},
	{ID: "horror", Title: "Horror"},
	{ID: "mystery", Title: "Mystery"},
	{ID: "romance", Title: "Romance"},
	{ID: "sci-fi", Title: "Sci-Fi"},
	{ID: "slice-of-life", Title: "Slice of Life"},
	{ID: "supernatural", Title: "Supernatural"},
	{ID: "thriller", Title: "Thriller"},
}

var languageOptions = []model.Tag{
	{ID: "all", Title: "All Languages"},
	{ID: "en", Title: "English"},
	{ID: "ja", Title: "Japanese"},
	{ID: "ko", Title: "Korean"},
	{ID: "zh", Title: "Chinese"},
}

func properties() []model.Property {
	return []model.Property{
		{ID: "type", Title: "Content Type", Tags: typeOptions},
		{ID: "demographic", Title: "Content Demographics", Tags: demographicOptions},
		{ID: "genres", Title: "Genres", Tags: genreOptions},
	}
}

// exploreCollections are the named browse collections on the explore
// page, kept alongside the home sections.
var exploreCollections = []model.PageSection{
	{ID: "latest", Title: "Latest Updates", Style: model.SectionInfo},
	{ID: "popular", Title: "Popular Titles", Style: model.SectionDefault},
	{ID: "trending", Title: "Trending Now", Style: model.SectionGallery},
	{ID: "completed", Title: "Completed Titles", Subtitle: "Binge-Worthy Completed Titles", Style: model.SectionInfo},
	{ID: "new_releases", Title: "New Releases", Style: model.SectionDefault},
	{ID: "recently_updated", Title: "Recently Updated", Style: model.SectionInfo},
}
