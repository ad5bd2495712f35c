package dal

import (
	"time"
)

type PostFormat string

const (
	FormatStandard PostFormat = "standard"
	FormatImage    PostFormat = "image"
	FormatGallery  PostFormat = "gallery"
	FormatVideo    PostFormat = "video"
	FormatAudio    PostFormat = "audio"
	FormatQuote    PostFormat = "quote"
	FormatLink     PostFormat = "link"
	FormatAside    PostFormat = "aside"
)

// ParsePostFormat maps unknown or empty values to standard.
func ParsePostFormat(str string) PostFormat {
	switch f := PostFormat(str); f {
	case FormatImage, FormatGallery, FormatVideo, FormatAudio, FormatQuote, FormatLink, FormatAside:
		return f
	default:
		return FormatStandard
	}
}

type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "publish"
)

// ParsePostStatus accepts both "publish" and "published"; other values are kept as they are.
func ParsePostStatus(str string) PostStatus {
	switch str {
	case string(StatusPublished), "published":
		return StatusPublished
	default:
		return PostStatus(str)
	}
}

const DefaultPostType = "post"

type Item struct {
	Id            string   // opaque ID assigned by the host
	PostType      string   // post
	Title         string   // Walking the Jinguashi trail
	Body          string   // rendered HTML
	Excerpt       string   // may be empty; derived from body on demand
	Tags          []string // tag slugs: hiking, taiwan
	Categories    []string // category slugs
	Geo           *GeoLocation
	Format        PostFormat
	Status        PostStatus
	Password      string // non-empty means password-protected
	Permalink     string // https://blog.example/2024/05/jinguashi
	FeaturedImage string // local file path or URL of the primary image
	AuthorEmail   string // receives new-comment notifications
	UpdatedAt     time.Time
}

type GeoLocation struct {
	Latitude  float64
	Longitude float64
	Address   string
	Public    bool
}

type BroadcastService string

const (
	ServiceTwitter   BroadcastService = "twitter"
	ServiceTumblr    BroadcastService = "tumblr"
	ServiceWordPress BroadcastService = "wordpress"
	ServiceFacebook  BroadcastService = "facebook"
)

var AllBroadcastServices = []BroadcastService{ServiceTwitter, ServiceTumblr, ServiceWordPress, ServiceFacebook}

func ParseBroadcastService(str string) (BroadcastService, bool) {
	for _, s := range AllBroadcastServices {
		if string(s) == str {
			return s, true
		}
	}
	return "", false
}

const (
	AspectPublic     = "public"
	AspectAllAspects = "all_aspects"
)

// AudienceScope is either [public], [all_aspects], or a set of numeric aspect IDs.
type AudienceScope []string

func (as AudienceScope) IsPublic() bool {
	return len(as) == 1 && as[0] == AspectPublic
}

type CrosspostDirective struct {
	OptOut      bool
	UseExcerpt  *bool // nil: use configured default
	UseGeo      *bool // nil: use configured default
	Aspects     AudienceScope
	Services    []BroadcastService
	ServicesSet bool // false: use configured auto-broadcast defaults
}

// ClearTransient drops the per-save overrides that no longer apply once an item is published.
func (d *CrosspostDirective) ClearTransient() {
	d.UseExcerpt = nil
	d.UseGeo = nil
	d.Services = nil
	d.ServicesSet = false
}

type SyncLink struct {
	ItemId       string
	RemotePostId string // 1234567
	PodHost      string // diasp.org
	CreatedAt    time.Time
}

type CommentStatus string

const (
	CommentApproved CommentStatus = "approved"
	CommentPending  CommentStatus = "pending"
	CommentSpam     CommentStatus = "spam"
)

type Comment struct {
	Id          int64
	ItemId      string
	Content     string // sanitized HTML
	AuthorName  string // Jane Doe
	AuthorEmail string // jane@pod.example
	AuthorUrl   string // https://pod.example/people/5f1e0b...
	AuthorIp    string // resolved address of the author's pod
	Agent       string
	Date        time.Time
	Approved    CommentStatus
}

type CommentLink struct {
	CommentId       int64
	ItemId          string
	RemoteGuid      string
	RemoteCommentId string
	Avatar          string // large avatar URL
}

type NoticeLevel string

const (
	NoticeInfo  NoticeLevel = "info"
	NoticeError NoticeLevel = "error"
)

type Notice struct {
	Id        int64
	CreatedAt time.Time
	Level     NoticeLevel
	Text      string
}

type FeedEntry struct {
	GuidHash int64
	ItemId   string
	SeenAt   time.Time
}
