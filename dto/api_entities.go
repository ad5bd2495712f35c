package dto

import "time"

// ItemSaved is the body of PUT /api/items/{id}.
type ItemSaved struct {
	PostType      string     `json:"post_type"`
	Title         string     `json:"title"`
	Body          string     `json:"body"`
	Excerpt       string     `json:"excerpt"`
	Tags          []string   `json:"tags"`
	Categories    []string   `json:"categories"`
	Geo           *Geo       `json:"geo,omitempty"`
	Format        string     `json:"format"`
	Status        string     `json:"status"`
	Password      string     `json:"password"`
	Permalink     string     `json:"permalink"`
	FeaturedImage string     `json:"featured_image"`
	AuthorEmail   string     `json:"author_email"`
	Autosave      bool       `json:"autosave"`
	Directive     *Directive `json:"directive,omitempty"`
}

type Geo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
	Public    *bool   `json:"public,omitempty"`
}

// Directive carries the per-save crosspost choices; nil members leave the stored value alone.
type Directive struct {
	Crosspost  *bool     `json:"crosspost,omitempty"`
	UseExcerpt *bool     `json:"use_excerpt,omitempty"`
	UseGeo     *bool     `json:"use_geo,omitempty"`
	AspectIds  []string  `json:"aspect_ids,omitempty"`
	Services   *[]string `json:"services,omitempty"`
}

type SyncResult struct {
	ItemId         string `json:"item_id"`
	Synced         bool   `json:"synced"`
	SkipReason     string `json:"skip_reason,omitempty"`
	RemotePostId   string `json:"remote_post_id,omitempty"`
	SyndicationUrl string `json:"syndication_url,omitempty"`
	Error          string `json:"error,omitempty"`
}

type Syndication struct {
	ItemId         string    `json:"item_id"`
	RemotePostId   string    `json:"remote_post_id"`
	PodHost        string    `json:"pod_host"`
	SyndicationUrl string    `json:"syndication_url"`
	CreatedAt      time.Time `json:"created_at"`
}

type Comment struct {
	Id          int64     `json:"id"`
	Content     string    `json:"content"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	AuthorUrl   string    `json:"author_url"`
	Date        time.Time `json:"date"`
	Approved    string    `json:"approved"`
	Avatar      string    `json:"avatar,omitempty"`
}

type Notice struct {
	CreatedAt time.Time `json:"created_at"`
	Level     string    `json:"level"`
	Text      string    `json:"text"`
}

type ReconcileResult struct {
	Handle   string `json:"handle"`
	Imported int    `json:"imported"`
	Failed   int    `json:"failed"`
}
