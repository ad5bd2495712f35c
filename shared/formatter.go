package shared

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"
)

const ellipsis = "…"

func GetHostName(userUrl string) (string, error) {
	var parsedUrl *url.URL
	var urlError error
	parsedUrl, urlError = url.Parse(userUrl)
	if urlError != nil {
		return "", fmt.Errorf("Failed to parse user URL '%s': %v", userUrl, urlError)
	}
	return parsedUrl.Hostname(), nil
}

// PodHostFromHandle returns the host part of user@pod.example.
func PodHostFromHandle(handle string) string {
	ix := strings.LastIndexByte(handle, '@')
	if ix == -1 {
		return handle
	}
	return handle[ix+1:]
}

func UserFromHandle(handle string) string {
	ix := strings.LastIndexByte(handle, '@')
	if ix == -1 {
		return handle
	}
	return handle[:ix]
}

func PodUrlFromHandle(handle string) string {
	return "https://" + PodHostFromHandle(handle)
}

// SyndicationUrl is the public address of a crossposted status message.
func SyndicationUrl(podHost, remotePostId string) string {
	return fmt.Sprintf("http://%s/posts/%s", podHost, remotePostId)
}

func ProfileUrl(podUrl, personGuid string) string {
	return strings.TrimRight(podUrl, "/") + "/people/" + personGuid
}

// TrimWords keeps the first maxWords whitespace-separated words of text.
// Words are never cut; if anything was dropped, an ellipsis is appended.
func TrimWords(text string, maxWords int) string {
	words := strings.FieldsFunc(text, unicode.IsSpace)
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + ellipsis
}

// NormalizeTag turns a configured tag into a hashtag body: spaces become dashes, '#' is dropped.
func NormalizeTag(tag string) string {
	tag = strings.TrimSpace(tag)
	tag = strings.ReplaceAll(tag, " ", "-")
	tag = strings.ReplaceAll(tag, "#", "")
	return strings.TrimSpace(tag)
}
