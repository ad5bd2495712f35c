package logic

import (
	"bytes"
	"context"
	"diasposter/dal"
	"diasposter/dto"
	"diasposter/shared"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/PuerkitoBio/goquery"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_diaspora.go -package mocks diasposter/logic IDiaspora,IDiasporaConnector

const (
	signInPath     = "/users/sign_in"
	csrfHeader     = "X-CSRF-Token"
	maxErrBodyLen  = 512
	photoMimeType  = "application/octet-stream"
	jsonMimeType   = "application/json"
	providerName   = "Diasposter"
	kindCommentOn  = "comment_on_post"
	photoFetchSize = 32 << 20
)

// PostExtras is the auxiliary data sent along with a status message.
type PostExtras struct {
	LocationAddress string
	LocationCoords  string
	Services        []string
	PhotoIds        []string
}

// IDiaspora is a session with one account on a Diaspora* pod.
type IDiaspora interface {
	LogIn(ctx context.Context) error
	PostStatusMessage(ctx context.Context, body string, aspects dal.AudienceScope, extras *PostExtras) (string, error)
	PostPhoto(ctx context.Context, fileOrUrl string) (string, error)
	DeletePost(ctx context.Context, remotePostId string) error
	DeleteComment(ctx context.Context, remoteCommentId string) error
	GetNotifications(ctx context.Context, kind string) ([]dto.Notification, error)
	GetComments(ctx context.Context, remotePostId string) ([]dto.RemoteComment, error)
	GetAspects(ctx context.Context) ([]dto.Aspect, error)
	GetServices(ctx context.Context) ([]dto.Service, error)
	DiasporaId() string
	PodUrl() string
}

// IDiasporaConnector opens a fresh session for a configured account.
type IDiasporaConnector interface {
	Connect(handle string) (IDiaspora, error)
}

type diasporaConnector struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
}

func NewDiasporaConnector(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
) IDiasporaConnector {
	return &diasporaConnector{cfg, logger, userAgent, metrics}
}

func (dc *diasporaConnector) Connect(handle string) (IDiaspora, error) {
	password, ok := dc.cfg.Secrets.Passwords[handle]
	if !ok {
		return nil, fmt.Errorf("no password configured for account %s", handle)
	}
	return NewDiasporaClient(dc.cfg, dc.logger, dc.userAgent, dc.metrics,
		handle, password, shared.PodUrlFromHandle(handle)), nil
}

type diaspora struct {
	cfg       *shared.Config
	logger    shared.ILogger
	userAgent shared.IUserAgent
	metrics   IMetrics
	handle    string
	password  string
	podUrl    string
	client    *http.Client
	csrfToken string
}

func NewDiasporaClient(
	cfg *shared.Config,
	logger shared.ILogger,
	userAgent shared.IUserAgent,
	metrics IMetrics,
	handle, password, podUrl string,
) IDiaspora {
	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar:     jar,
		Timeout: time.Duration(cfg.RemoteTimeoutSec) * time.Second,
	}
	return &diaspora{
		cfg:       cfg,
		logger:    logger,
		userAgent: userAgent,
		metrics:   metrics,
		handle:    handle,
		password:  password,
		podUrl:    strings.TrimRight(podUrl, "/"),
		client:    client,
	}
}

func (d *diaspora) DiasporaId() string {
	return d.handle
}

func (d *diaspora) PodUrl() string {
	return d.podUrl
}

func getCsrfToken(doc *goquery.Document) string {
	if token, ok := doc.Find("meta[name='csrf-token']").First().Attr("content"); ok && token != "" {
		return token
	}
	return doc.Find("input[name='authenticity_token']").First().AttrOr("value", "")
}

func (d *diaspora) getPage(ctx context.Context, pagePath string) (*goquery.Document, *http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", d.podUrl+pagePath, nil)
	if err != nil {
		return nil, nil, err
	}
	d.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", "text/html")
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return nil, resp, fmt.Errorf("GET %s returned status %s", pagePath, resp.Status)
	}
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, resp, err
	}
	return doc, resp, nil
}

// LogIn signs in with the account's credentials and picks up the session's CSRF token.
func (d *diaspora) LogIn(ctx context.Context) error {

	obs := d.metrics.StartRemoteRequest("login")
	defer obs.Finish()

	doc, _, err := d.getPage(ctx, signInPath)
	if err != nil {
		return err
	}
	token := getCsrfToken(doc)
	if token == "" {
		return errors.New("sign-in page has no CSRF token")
	}

	form := url.Values{}
	form.Set("utf8", "✓")
	form.Set("user[username]", shared.UserFromHandle(d.handle))
	form.Set("user[password]", d.password)
	form.Set("user[remember_me]", "1")
	form.Set("authenticity_token", token)

	req, err := http.NewRequestWithContext(ctx, "POST", d.podUrl+signInPath, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	d.userAgent.AddUserAgent(req)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sign-in returned status %s", resp.Status)
	}
	// A failed sign-in lands back on the form
	if resp.Request != nil && strings.HasSuffix(resp.Request.URL.Path, signInPath) {
		return fmt.Errorf("sign-in rejected for %s", d.handle)
	}

	if doc, err = goquery.NewDocumentFromReader(resp.Body); err != nil {
		return err
	}
	if d.csrfToken = getCsrfToken(doc); d.csrfToken == "" {
		d.csrfToken = token
	}
	d.logger.Debugf("Logged in to %s as %s", d.podUrl, d.handle)
	return nil
}

func (d *diaspora) doRequest(
	ctx context.Context,
	label, method, reqPath string,
	body io.Reader,
	contentType string,
	respObj any,
) error {

	obs := d.metrics.StartRemoteRequest(label)
	defer obs.Finish()

	req, err := http.NewRequestWithContext(ctx, method, d.podUrl+reqPath, body)
	if err != nil {
		return err
	}
	d.userAgent.AddUserAgent(req)
	req.Header.Set("Accept", jsonMimeType)
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if d.csrfToken != "" {
		req.Header.Set(csrfHeader, d.csrfToken)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)

	if resp.StatusCode >= 300 {
		if len(respBody) > maxErrBodyLen {
			respBody = respBody[:maxErrBodyLen]
		}
		msg := fmt.Sprintf("%s %s got status %s: response: %s", method, reqPath, resp.Status, respBody)
		d.logger.Warnf("Diaspora request failed: %s", msg)
		return errors.New(msg)
	}

	if respObj == nil {
		return nil
	}
	if err = json.Unmarshal(respBody, respObj); err != nil {
		return fmt.Errorf("%s %s: invalid JSON in response: %w", method, reqPath, err)
	}
	return nil
}

func (d *diaspora) PostStatusMessage(
	ctx context.Context,
	body string,
	aspects dal.AudienceScope,
	extras *PostExtras,
) (string, error) {

	msg := dto.StatusMessageReq{
		StatusMessage: dto.StatusMessage{
			Text:                body,
			ProviderDisplayName: providerName,
		},
		AspectIds: aspects,
	}
	if extras != nil {
		msg.Services = extras.Services
		msg.PhotoIds = extras.PhotoIds
		msg.LocationAddress = extras.LocationAddress
		msg.LocationCoords = extras.LocationCoords
	}
	bodyJson, _ := json.Marshal(&msg)

	var resp dto.StatusMessageResp
	err := d.doRequest(ctx, "post_status", "POST", "/status_messages",
		bytes.NewReader(bodyJson), jsonMimeType, &resp)
	if err != nil {
		return "", err
	}
	if resp.Id.String() == "" {
		return "", errors.New("status message response has no post ID")
	}
	return resp.Id.String(), nil
}

func (d *diaspora) readPhoto(ctx context.Context, fileOrUrl string) ([]byte, error) {
	if !strings.HasPrefix(fileOrUrl, "http://") && !strings.HasPrefix(fileOrUrl, "https://") {
		return os.ReadFile(fileOrUrl)
	}
	req, err := http.NewRequestWithContext(ctx, "GET", fileOrUrl, nil)
	if err != nil {
		return nil, err
	}
	d.userAgent.AddUserAgent(req)
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s returned status %s", fileOrUrl, resp.Status)
	}
	return io.ReadAll(io.LimitReader(resp.Body, photoFetchSize))
}

// PostPhoto uploads a pending photo from a local file or a URL and returns its remote ID.
func (d *diaspora) PostPhoto(ctx context.Context, fileOrUrl string) (string, error) {

	data, err := d.readPhoto(ctx, fileOrUrl)
	if err != nil {
		return "", err
	}
	name := path.Base(fileOrUrl)
	if parsed, err := url.Parse(fileOrUrl); err == nil && parsed.Path != "" {
		name = path.Base(parsed.Path)
	}
	query := url.Values{}
	query.Set("photo[pending]", "true")
	query.Set("qqfile", name)

	var resp dto.PhotoResp
	err = d.doRequest(ctx, "post_photo", "POST", "/photos?"+query.Encode(),
		bytes.NewReader(data), photoMimeType, &resp)
	if err != nil {
		return "", err
	}
	if !resp.Success || resp.Data.Photo.Id.String() == "" {
		return "", fmt.Errorf("photo upload of %s was not accepted", name)
	}
	return resp.Data.Photo.Id.String(), nil
}

func (d *diaspora) DeletePost(ctx context.Context, remotePostId string) error {
	return d.doRequest(ctx, "delete_post", "DELETE", "/posts/"+url.PathEscape(remotePostId), nil, "", nil)
}

func (d *diaspora) DeleteComment(ctx context.Context, remoteCommentId string) error {
	return d.doRequest(ctx, "delete_comment", "DELETE", "/comments/"+url.PathEscape(remoteCommentId), nil, "", nil)
}

// GetNotifications lists the account's notifications; an empty kind lists all of them.
func (d *diaspora) GetNotifications(ctx context.Context, kind string) ([]dto.Notification, error) {
	reqPath := "/notifications.json"
	if kind != "" {
		reqPath += "?type=" + url.QueryEscape(kind)
	}
	var res []dto.Notification
	if err := d.doRequest(ctx, "get_notifications", "GET", reqPath, nil, "", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *diaspora) GetComments(ctx context.Context, remotePostId string) ([]dto.RemoteComment, error) {
	var res []dto.RemoteComment
	reqPath := "/posts/" + url.PathEscape(remotePostId) + "/comments.json"
	if err := d.doRequest(ctx, "get_comments", "GET", reqPath, nil, "", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *diaspora) GetAspects(ctx context.Context) ([]dto.Aspect, error) {
	var res []dto.Aspect
	if err := d.doRequest(ctx, "get_aspects", "GET", "/aspects.json", nil, "", &res); err != nil {
		return nil, err
	}
	return res, nil
}

func (d *diaspora) GetServices(ctx context.Context) ([]dto.Service, error) {
	var res []dto.Service
	if err := d.doRequest(ctx, "get_services", "GET", "/services.json", nil, "", &res); err != nil {
		return nil, err
	}
	return res, nil
}
