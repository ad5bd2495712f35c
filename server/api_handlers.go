package server

import (
	"crypto/subtle"
	"diasposter/dal"
	"diasposter/dto"
	"diasposter/logic"
	"diasposter/shared"
	"encoding/json"
	"errors"
	"github.com/gorilla/mux"
	"net/http"
	"strconv"
)

// Hook API called by the host: item and comment lifecycle events, notices, account metadata.
type apiHandlerGroup struct {
	cfg         *shared.Config
	logger      shared.ILogger
	metrics     logic.IMetrics
	repo        dal.IRepo
	sigChecker  logic.IHttpSigChecker
	coordinator logic.ISyncCoordinator
	deletion    logic.IDeletionPropagator
	notifier    logic.INotifier
	cache       logic.IRemoteCache
	scheduler   logic.ISyncScheduler
}

func NewApiHandlerGroup(
	cfg *shared.Config,
	logger shared.ILogger,
	metrics logic.IMetrics,
	repo dal.IRepo,
	sigChecker logic.IHttpSigChecker,
	coordinator logic.ISyncCoordinator,
	deletion logic.IDeletionPropagator,
	notifier logic.INotifier,
	cache logic.IRemoteCache,
	scheduler logic.ISyncScheduler,
) IHandlerGroup {
	res := apiHandlerGroup{
		cfg:         cfg,
		logger:      logger,
		metrics:     metrics,
		repo:        repo,
		sigChecker:  sigChecker,
		coordinator: coordinator,
		deletion:    deletion,
		notifier:    notifier,
		cache:       cache,
		scheduler:   scheduler,
	}
	return &res
}

func (hg *apiHandlerGroup) Prefix() string {
	return "/api"
}

func (hg *apiHandlerGroup) GroupDefs() []handlerDef {
	return []handlerDef{
		{"PUT", "/items/{id}", func(w http.ResponseWriter, r *http.Request) { hg.putItem(w, r) }},
		{"DELETE", "/items/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteItem(w, r) }},
		{"GET", "/items/{id}/syndication", func(w http.ResponseWriter, r *http.Request) { hg.getSyndication(w, r) }},
		{"GET", "/items/{id}/comments", func(w http.ResponseWriter, r *http.Request) { hg.getComments(w, r) }},
		{"DELETE", "/comments/{id}", func(w http.ResponseWriter, r *http.Request) { hg.deleteComment(w, r) }},
		{"GET", "/notices", func(w http.ResponseWriter, r *http.Request) { hg.getNotices(w, r) }},
		{"GET", "/accounts/{handle}/aspects", func(w http.ResponseWriter, r *http.Request) { hg.getAspects(w, r) }},
		{"GET", "/accounts/{handle}/services", func(w http.ResponseWriter, r *http.Request) { hg.getServices(w, r) }},
		{"POST", "/accounts/{handle}/refresh", func(w http.ResponseWriter, r *http.Request) { hg.postRefresh(w, r) }},
		{"POST", "/accounts/{handle}/sync", func(w http.ResponseWriter, r *http.Request) { hg.postSync(w, r) }},
	}
}

func (hg *apiHandlerGroup) AuthMW() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return hg.authMW(next)
	}
}

// Requests are accepted with a known API key, or with an HMAC signature from a known hook key.
func (hg *apiHandlerGroup) authMW(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if logic.HasSignature(r) {
			body := readBody(hg.logger, w, r)
			if body == nil {
				return
			}
			if _, msg := hg.sigChecker.Check(r, body); msg != "" {
				hg.logger.Warnf("API request with rejected signature: %s: %s", r.URL.Path, msg)
				writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
			return
		}
		var apiKey = r.Header.Get(apiKeyHeader)
		found := false
		for _, key := range hg.cfg.Secrets.ApiKeys {
			if apiKey != "" && subtle.ConstantTimeCompare([]byte(apiKey), []byte(key)) == 1 {
				found = true
			}
		}
		if !found {
			keyPart := apiKey
			if len(apiKey) > 4 {
				keyPart = apiKey[:4] + "..."
			}
			hg.logger.Warnf("API request with missing or invalid key '%s': %s", keyPart, r.URL.Path)
			writeErrorResponse(w, badApiKeyStr, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func toSaveEvent(itemId string, req *dto.ItemSaved) *logic.ItemSaveEvent {
	item := dal.Item{
		Id:            itemId,
		PostType:      req.PostType,
		Title:         req.Title,
		Body:          req.Body,
		Excerpt:       req.Excerpt,
		Tags:          req.Tags,
		Categories:    req.Categories,
		Format:        dal.ParsePostFormat(req.Format),
		Status:        dal.ParsePostStatus(req.Status),
		Password:      req.Password,
		Permalink:     req.Permalink,
		FeaturedImage: req.FeaturedImage,
		AuthorEmail:   req.AuthorEmail,
	}
	if req.Geo != nil {
		item.Geo = &dal.GeoLocation{
			Latitude:  req.Geo.Latitude,
			Longitude: req.Geo.Longitude,
			Address:   req.Geo.Address,
			Public:    req.Geo.Public == nil || *req.Geo.Public,
		}
	}
	ev := logic.ItemSaveEvent{Item: &item, Autosave: req.Autosave}
	if d := req.Directive; d != nil {
		ev.Directive = &logic.DirectiveUpdate{
			Crosspost:  d.Crosspost,
			UseExcerpt: d.UseExcerpt,
			UseGeo:     d.UseGeo,
			AspectIds:  d.AspectIds,
		}
		if d.Services != nil {
			services := []dal.BroadcastService{}
			for _, str := range *d.Services {
				if srv, ok := dal.ParseBroadcastService(str); ok {
					services = append(services, srv)
				}
			}
			ev.Directive.Services = &services
		}
	}
	return &ev
}

func (hg *apiHandlerGroup) putItem(w http.ResponseWriter, r *http.Request) {

	itemId := mux.Vars(r)["id"]
	hg.logger.Infof("Handling item PUT: %s", itemId)
	obs := hg.metrics.StartWebRequestIn("item/put")
	defer obs.Finish()

	body := readBody(hg.logger, w, r)
	if body == nil {
		return
	}
	var req dto.ItemSaved
	if err := json.Unmarshal(body, &req); err != nil {
		hg.logger.Infof("Invalid item JSON: %v", err)
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}

	resp := dto.SyncResult{ItemId: itemId}
	res, err := hg.coordinator.SaveItem(r.Context(), toSaveEvent(itemId, &req))
	if err != nil {
		resp.Error = err.Error()
		code := http.StatusInternalServerError
		if logic.IsRemoteError(err) {
			code = http.StatusBadGateway
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		respJson, _ := json.Marshal(&resp)
		_, _ = w.Write(respJson)
		return
	}

	resp.SkipReason = string(res.Skip)
	if res.Synced() {
		resp.Synced = true
		resp.RemotePostId = res.Link.RemotePostId
		resp.SyndicationUrl = shared.SyndicationUrl(res.Link.PodHost, res.Link.RemotePostId)
	}
	writeJsonResponse(hg.logger, w, &resp)
}

func (hg *apiHandlerGroup) deleteItem(w http.ResponseWriter, r *http.Request) {

	itemId := mux.Vars(r)["id"]
	hg.logger.Infof("Handling item DELETE: %s", itemId)
	obs := hg.metrics.StartWebRequestIn("item/delete")
	defer obs.Finish()

	hg.deletion.ItemDeleted(r.Context(), itemId)
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) getSyndication(w http.ResponseWriter, r *http.Request) {

	itemId := mux.Vars(r)["id"]
	obs := hg.metrics.StartWebRequestIn("item/syndication")
	defer obs.Finish()

	link, err := hg.repo.GetSyncLink(itemId)
	if err != nil {
		hg.logger.Errorf("Failed to get sync link of item %s: %v", itemId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	if link == nil {
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.Syndication{
		ItemId:         itemId,
		RemotePostId:   link.RemotePostId,
		PodHost:        link.PodHost,
		SyndicationUrl: shared.SyndicationUrl(link.PodHost, link.RemotePostId),
		CreatedAt:      link.CreatedAt,
	})
}

func (hg *apiHandlerGroup) getComments(w http.ResponseWriter, r *http.Request) {

	itemId := mux.Vars(r)["id"]
	obs := hg.metrics.StartWebRequestIn("item/comments")
	defer obs.Finish()

	comments, err := hg.repo.GetComments(itemId)
	if err != nil {
		hg.logger.Errorf("Failed to get comments of item %s: %v", itemId, err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]dto.Comment, 0, len(comments))
	for _, c := range comments {
		dc := dto.Comment{
			Id:          c.Id,
			Content:     c.Content,
			AuthorName:  c.AuthorName,
			AuthorEmail: c.AuthorEmail,
			AuthorUrl:   c.AuthorUrl,
			Date:        c.Date,
			Approved:    string(c.Approved),
		}
		if link, err := hg.repo.GetCommentLink(c.Id); err == nil && link != nil {
			dc.Avatar = link.Avatar
		}
		resp = append(resp, dc)
	}
	writeJsonResponse(hg.logger, w, resp)
}

func (hg *apiHandlerGroup) deleteComment(w http.ResponseWriter, r *http.Request) {

	idStr := mux.Vars(r)["id"]
	hg.logger.Infof("Handling comment DELETE: %s", idStr)
	obs := hg.metrics.StartWebRequestIn("comment/delete")
	defer obs.Finish()

	commentId, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeErrorResponse(w, badRequestStr, http.StatusBadRequest)
		return
	}
	hg.deletion.CommentDeleted(r.Context(), commentId)
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) getNotices(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("notices")
	defer obs.Finish()

	notices, err := hg.notifier.PopNotices()
	if err != nil {
		hg.logger.Errorf("Failed to get notices: %v", err)
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
		return
	}
	resp := make([]dto.Notice, 0, len(notices))
	for _, n := range notices {
		resp = append(resp, dto.Notice{CreatedAt: n.CreatedAt, Level: string(n.Level), Text: n.Text})
	}
	writeJsonResponse(hg.logger, w, resp)
}

// accountHandle returns the configured handle in the path, or writes a 404.
func (hg *apiHandlerGroup) accountHandle(w http.ResponseWriter, r *http.Request) (string, bool) {
	handle := mux.Vars(r)["handle"]
	acct := hg.cfg.GetAccount(handle)
	if acct == nil {
		hg.logger.Infof("Request for unknown account: %s", handle)
		writeErrorResponse(w, notFoundStr, http.StatusNotFound)
		return "", false
	}
	return acct.Handle, true
}

func (hg *apiHandlerGroup) writeRemoteFailure(w http.ResponseWriter, what string, err error) {
	hg.logger.Errorf("Failed to %s: %v", what, err)
	if logic.IsRemoteError(err) {
		writeErrorResponse(w, badGatewayStr, http.StatusBadGateway)
	} else {
		writeErrorResponse(w, internalErrorStr, http.StatusInternalServerError)
	}
}

func (hg *apiHandlerGroup) getAspects(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("account/aspects")
	defer obs.Finish()

	handle, ok := hg.accountHandle(w, r)
	if !ok {
		return
	}
	aspects, err := hg.cache.GetAspects(r.Context(), handle)
	if err != nil {
		hg.writeRemoteFailure(w, "get aspects of "+handle, err)
		return
	}
	writeJsonResponse(hg.logger, w, aspects)
}

func (hg *apiHandlerGroup) getServices(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("account/services")
	defer obs.Finish()

	handle, ok := hg.accountHandle(w, r)
	if !ok {
		return
	}
	services, err := hg.cache.GetServices(r.Context(), handle)
	if err != nil {
		hg.writeRemoteFailure(w, "get services of "+handle, err)
		return
	}
	writeJsonResponse(hg.logger, w, services)
}

func (hg *apiHandlerGroup) postRefresh(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("account/refresh")
	defer obs.Finish()

	handle, ok := hg.accountHandle(w, r)
	if !ok {
		return
	}
	if err := hg.cache.Refresh(r.Context(), handle); err != nil {
		hg.writeRemoteFailure(w, "refresh metadata of "+handle, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (hg *apiHandlerGroup) postSync(w http.ResponseWriter, r *http.Request) {

	obs := hg.metrics.StartWebRequestIn("account/sync")
	defer obs.Finish()

	handle, ok := hg.accountHandle(w, r)
	if !ok {
		return
	}
	stats, err := hg.scheduler.RunNow(r.Context(), handle)
	if errors.Is(err, logic.ErrSyncRunning) {
		writeErrorResponse(w, conflictStr, http.StatusConflict)
		return
	}
	if err != nil {
		hg.writeRemoteFailure(w, "sync comments of "+handle, err)
		return
	}
	writeJsonResponse(hg.logger, w, &dto.ReconcileResult{
		Handle:   handle,
		Imported: stats.Imported,
		Failed:   stats.Failed,
	})
}
