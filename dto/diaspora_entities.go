package dto

import (
	"encoding/json"
	"time"
)

// Wire records exchanged with a Diaspora* pod's JSON endpoints.

type StatusMessageReq struct {
	StatusMessage   StatusMessage `json:"status_message"`
	AspectIds       []string      `json:"aspect_ids"`
	Services        []string      `json:"services,omitempty"`
	PhotoIds        []string      `json:"photos,omitempty"`
	LocationAddress string        `json:"location_address,omitempty"`
	LocationCoords  string        `json:"location_coords,omitempty"`
}

type StatusMessage struct {
	Text                string `json:"text"`
	ProviderDisplayName string `json:"provider_display_name,omitempty"`
}

type StatusMessageResp struct {
	Id   json.Number `json:"id"`
	Guid string      `json:"guid"`
}

type PhotoResp struct {
	Success bool      `json:"success"`
	Data    PhotoData `json:"data"`
}

type PhotoData struct {
	Photo Photo `json:"photo"`
}

type Photo struct {
	Id   json.Number `json:"id"`
	Guid string      `json:"guid"`
}

type Aspect struct {
	Id       json.Number `json:"id"`
	Name     string      `json:"name"`
	Selected bool        `json:"selected"`
}

type Service struct {
	Id       json.Number `json:"id"`
	Provider string      `json:"provider"`
	Nickname string      `json:"nickname"`
}

// Notification holds one entry of /notifications.json; the key names the kind.
type Notification struct {
	CommentOnPost *NotificationTarget `json:"comment_on_post,omitempty"`
	AlsoCommented *NotificationTarget `json:"also_commented,omitempty"`
	Liked         *NotificationTarget `json:"liked,omitempty"`
	Mentioned     *NotificationTarget `json:"mentioned,omitempty"`
	Reshared      *NotificationTarget `json:"reshared,omitempty"`
}

type NotificationTarget struct {
	Id         json.Number `json:"id"`
	TargetId   json.Number `json:"target_id"`
	TargetType string      `json:"target_type"`
	Unread     bool        `json:"unread"`
	CreatedAt  time.Time   `json:"created_at"`
}

type RemoteComment struct {
	Id        json.Number  `json:"id"`
	Guid      string       `json:"guid"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
	Author    RemoteAuthor `json:"author"`
}

type RemoteAuthor struct {
	Id         json.Number `json:"id"`
	Guid       string      `json:"guid"`
	Name       string      `json:"name"`
	DiasporaId string      `json:"diaspora_id"`
	Avatar     Avatar      `json:"avatar"`
}

type Avatar struct {
	Small  string `json:"small"`
	Medium string `json:"medium"`
	Large  string `json:"large"`
}
