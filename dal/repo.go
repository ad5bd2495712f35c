package dal

import (
	"database/sql"
	"diasposter/shared"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/mattn/go-sqlite3"
	"strings"
	"sync"
	"time"
)

const schemaVer = 1

//go:embed scripts/*
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	UpsertItem(item *Item) error
	GetItem(id string) (*Item, error)
	DeleteItem(id string) error
	GetDirective(itemId string) (*CrosspostDirective, error)
	SaveDirective(itemId string, dir *CrosspostDirective) error
	GetSyncLink(itemId string) (*SyncLink, error)
	AddSyncLink(link *SyncLink) error
	DeleteSyncLink(itemId string) error
	GetItemIdByRemotePostId(remotePostId string) (string, error)
	HasCommentLink(itemId, remoteGuid string) (bool, error)
	AddImportedComment(comment *Comment, link *CommentLink) (isNew bool, err error)
	GetComment(id int64) (*Comment, error)
	GetComments(itemId string) ([]*Comment, error)
	GetCommentLink(commentId int64) (*CommentLink, error)
	DeleteComment(id int64) error
	AddNotice(notice *Notice) error
	PopNotices() ([]*Notice, error)
	HasFeedEntry(guidHash int64) (bool, error)
	AddFeedEntryIfNew(entry *FeedEntry) (isNew bool, err error)
	GetFeedEntryCount() (int, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sql.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sql.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// https://github.com/mattn/go-sqlite3/issues/1022#issuecomment-1067353980
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sql.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	dbVer := 0
	sysParamsExists := false
	var err error
	var rows *sql.Rows

	rows, err = repo.db.Query("SELECT name FROM sqlite_master WHERE type='table' AND name='sys_params'")
	if err != nil {
		repo.logger.Errorf("Failed to check if 'sys_params' table exists: %v", err)
		panic(err)
	}
	for rows.Next() {
		sysParamsExists = true
	}
	_ = rows.Close()
	if !sysParamsExists {
		repo.logger.Printf("Database appears to be empty; current schema version is %d", schemaVer)
	} else {
		row := repo.db.QueryRow("SELECT val FROM sys_params WHERE name='schema_ver'")
		if err = row.Scan(&dbVer); err != nil {
			repo.logger.Errorf("Failed to query schema version: %v", err)
			panic(err)
		}
		repo.logger.Printf("Database is at version %d; current schema version is %d", dbVer, schemaVer)
	}
	for i := dbVer; i < schemaVer; i += 1 {
		nextVer := i + 1
		fn := fmt.Sprintf("scripts/create-%02d.sql", nextVer)
		repo.logger.Printf("Running %s", fn)
		var sqlBytes []byte
		if sqlBytes, err = scripts.ReadFile(fn); err != nil {
			repo.logger.Errorf("Failed to read init script %s: %v", fn, err)
			panic(err)
		}
		sqlStr := string(sqlBytes)
		if _, err = repo.db.Exec(sqlStr); err != nil {
			repo.logger.Errorf("Failed to execute init script %s: %v", fn, err)
			panic(err)
		}
		_, err = repo.db.Exec("UPDATE sys_params SET val=? WHERE name='schema_ver'", nextVer)
		if err != nil {
			repo.logger.Errorf("Failed to update schema_ver to %d: %v", i, err)
			panic(err)
		}
	}
}

func isDuplicateKey(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	return sqliteErr.Code == sqlite3.ErrConstraint &&
		(sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey)
}

func marshalStrings(strs []string) string {
	if strs == nil {
		strs = []string{}
	}
	res, _ := json.Marshal(strs)
	return string(res)
}

func unmarshalStrings(str string) []string {
	var res []string
	if str == "" {
		return res
	}
	_ = json.Unmarshal([]byte(str), &res)
	return res
}

func (repo *Repo) UpsertItem(item *Item) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if item.PostType == "" {
		item.PostType = DefaultPostType
	}
	if item.Format == "" {
		item.Format = FormatStandard
	}
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = time.Now().UTC()
	}

	var geoLat, geoLon sql.NullFloat64
	var geoAddress sql.NullString
	var geoPublic sql.NullBool
	if item.Geo != nil {
		geoLat = sql.NullFloat64{Float64: item.Geo.Latitude, Valid: true}
		geoLon = sql.NullFloat64{Float64: item.Geo.Longitude, Valid: true}
		geoAddress = sql.NullString{String: item.Geo.Address, Valid: true}
		geoPublic = sql.NullBool{Bool: item.Geo.Public, Valid: true}
	}

	_, err := repo.db.Exec(`INSERT INTO items
		(id, post_type, title, body, excerpt, tags, categories, geo_lat, geo_lon, geo_address, geo_public,
		 format, status, password, permalink, featured_image, author_email, updated_at)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET post_type=excluded.post_type, title=excluded.title, body=excluded.body,
			excerpt=excluded.excerpt, tags=excluded.tags, categories=excluded.categories,
			geo_lat=excluded.geo_lat, geo_lon=excluded.geo_lon, geo_address=excluded.geo_address,
			geo_public=excluded.geo_public, format=excluded.format, status=excluded.status,
			password=excluded.password, permalink=excluded.permalink, featured_image=excluded.featured_image,
			author_email=excluded.author_email, updated_at=excluded.updated_at`,
		item.Id, item.PostType, item.Title, item.Body, item.Excerpt,
		marshalStrings(item.Tags), marshalStrings(item.Categories),
		geoLat, geoLon, geoAddress, geoPublic,
		string(item.Format), string(item.Status), item.Password, item.Permalink, item.FeaturedImage,
		item.AuthorEmail, item.UpdatedAt)
	return err
}

func (repo *Repo) GetItem(id string) (*Item, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT id, post_type, title, body, excerpt, tags, categories,
		geo_lat, geo_lon, geo_address, geo_public, format, status, password, permalink,
		featured_image, author_email, updated_at
		FROM items WHERE id=?`, id)

	var res Item
	var tags, categories, format, status string
	var geoLat, geoLon sql.NullFloat64
	var geoAddress sql.NullString
	var geoPublic sql.NullBool
	err := row.Scan(&res.Id, &res.PostType, &res.Title, &res.Body, &res.Excerpt, &tags, &categories,
		&geoLat, &geoLon, &geoAddress, &geoPublic, &format, &status, &res.Password, &res.Permalink,
		&res.FeaturedImage, &res.AuthorEmail, &res.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		} else {
			return nil, err
		}
	}
	res.Tags = unmarshalStrings(tags)
	res.Categories = unmarshalStrings(categories)
	res.Format = ParsePostFormat(format)
	res.Status = PostStatus(status)
	if geoLat.Valid && geoLon.Valid {
		res.Geo = &GeoLocation{
			Latitude:  geoLat.Float64,
			Longitude: geoLon.Float64,
			Address:   geoAddress.String,
			Public:    !geoPublic.Valid || geoPublic.Bool,
		}
	}
	return &res, nil
}

// DeleteItem removes the item with its directive and comments.
// The sync link is kept: only a successful remote delete may remove it.
func (repo *Repo) DeleteItem(id string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmts := []string{
		`DELETE FROM comment_links WHERE item_id=?`,
		`DELETE FROM comments WHERE item_id=?`,
		`DELETE FROM directives WHERE item_id=?`,
		`DELETE FROM items WHERE id=?`,
	}
	for _, stmt := range stmts {
		if _, err = tx.Exec(stmt, id); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func nullableBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func (repo *Repo) GetDirective(itemId string) (*CrosspostDirective, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT opt_out, use_excerpt, use_geo, aspects, services
		FROM directives WHERE item_id=?`, itemId)

	var res CrosspostDirective
	var useExcerpt, useGeo sql.NullBool
	var aspects, services sql.NullString
	err := row.Scan(&res.OptOut, &useExcerpt, &useGeo, &aspects, &services)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &res, nil
		}
		return nil, err
	}
	if useExcerpt.Valid {
		res.UseExcerpt = &useExcerpt.Bool
	}
	if useGeo.Valid {
		res.UseGeo = &useGeo.Bool
	}
	if aspects.Valid {
		res.Aspects = unmarshalStrings(aspects.String)
	}
	if services.Valid {
		res.ServicesSet = true
		for _, str := range unmarshalStrings(services.String) {
			if srv, ok := ParseBroadcastService(str); ok {
				res.Services = append(res.Services, srv)
			}
		}
	}
	return &res, nil
}

func (repo *Repo) SaveDirective(itemId string, dir *CrosspostDirective) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	var aspects, services sql.NullString
	if dir.Aspects != nil {
		aspects = sql.NullString{String: marshalStrings(dir.Aspects), Valid: true}
	}
	if dir.ServicesSet {
		strs := make([]string, 0, len(dir.Services))
		for _, srv := range dir.Services {
			strs = append(strs, string(srv))
		}
		services = sql.NullString{String: marshalStrings(strs), Valid: true}
	}

	_, err := repo.db.Exec(`INSERT INTO directives (item_id, opt_out, use_excerpt, use_geo, aspects, services)
		VALUES(?, ?, ?, ?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET opt_out=excluded.opt_out, use_excerpt=excluded.use_excerpt,
			use_geo=excluded.use_geo, aspects=excluded.aspects, services=excluded.services`,
		itemId, dir.OptOut, nullableBool(dir.UseExcerpt), nullableBool(dir.UseGeo), aspects, services)
	return err
}

func (repo *Repo) GetSyncLink(itemId string) (*SyncLink, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT item_id, remote_post_id, pod_host, created_at
		FROM sync_links WHERE item_id=?`, itemId)
	var res SyncLink
	err := row.Scan(&res.ItemId, &res.RemotePostId, &res.PodHost, &res.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// AddSyncLink fails if the item already has a link; links are never overwritten.
func (repo *Repo) AddSyncLink(link *SyncLink) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if link.CreatedAt.IsZero() {
		link.CreatedAt = time.Now().UTC()
	}
	_, err := repo.db.Exec(`INSERT INTO sync_links (item_id, remote_post_id, pod_host, created_at)
		VALUES(?, ?, ?, ?)`, link.ItemId, link.RemotePostId, link.PodHost, link.CreatedAt)
	if err != nil && isDuplicateKey(err) {
		return fmt.Errorf("item %s is already linked to a remote post", link.ItemId)
	}
	return err
}

func (repo *Repo) DeleteSyncLink(itemId string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM sync_links WHERE item_id=?`, itemId)
	return err
}

// GetItemIdByRemotePostId returns "" if no item is linked to the remote post.
func (repo *Repo) GetItemIdByRemotePostId(remotePostId string) (string, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT item_id FROM sync_links WHERE remote_post_id=?
		ORDER BY created_at DESC LIMIT 1`, remotePostId)
	var res string
	if err := row.Scan(&res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return res, nil
}

func (repo *Repo) HasCommentLink(itemId, remoteGuid string) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM comment_links WHERE item_id=? AND remote_guid=?`,
		itemId, remoteGuid)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

// AddImportedComment stores a comment together with its link to the remote comment.
// If a comment for the same item and remote GUID exists, nothing is written and isNew is false.
func (repo *Repo) AddImportedComment(comment *Comment, link *CommentLink) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	isNew = false
	var tx *sql.Tx
	if tx, err = repo.db.Begin(); err != nil {
		return
	}
	defer tx.Rollback()

	var res sql.Result
	res, err = tx.Exec(`INSERT INTO comments
		(item_id, content, author_name, author_email, author_url, author_ip, agent, date, approved)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		comment.ItemId, comment.Content, comment.AuthorName, comment.AuthorEmail, comment.AuthorUrl,
		comment.AuthorIp, comment.Agent, comment.Date, string(comment.Approved))
	if err != nil {
		return
	}
	var commentId int64
	if commentId, err = res.LastInsertId(); err != nil {
		return
	}

	_, err = tx.Exec(`INSERT INTO comment_links (comment_id, item_id, remote_guid, remote_comment_id, avatar)
		VALUES(?, ?, ?, ?, ?)`,
		commentId, comment.ItemId, link.RemoteGuid, link.RemoteCommentId, link.Avatar)
	if err != nil {
		if isDuplicateKey(err) {
			err = nil
		}
		return
	}

	if err = tx.Commit(); err != nil {
		return
	}
	comment.Id = commentId
	link.CommentId = commentId
	link.ItemId = comment.ItemId
	isNew = true
	return
}

const commentColumns = `id, item_id, content, author_name, author_email, author_url, author_ip, agent, date, approved`

func scanComment(scan func(dest ...any) error) (*Comment, error) {
	var res Comment
	var approved string
	err := scan(&res.Id, &res.ItemId, &res.Content, &res.AuthorName, &res.AuthorEmail, &res.AuthorUrl,
		&res.AuthorIp, &res.Agent, &res.Date, &approved)
	if err != nil {
		return nil, err
	}
	res.Approved = CommentStatus(approved)
	return &res, nil
}

func (repo *Repo) GetComment(id int64) (*Comment, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT `+commentColumns+` FROM comments WHERE id=?`, id)
	res, err := scanComment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetComments(itemId string) ([]*Comment, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	rows, err := repo.db.Query(`SELECT `+commentColumns+` FROM comments WHERE item_id=? ORDER BY date ASC, id ASC`,
		itemId)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]*Comment, 0)
	for rows.Next() {
		var c *Comment
		if c, err = scanComment(rows.Scan); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) GetCommentLink(commentId int64) (*CommentLink, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT comment_id, item_id, remote_guid, remote_comment_id, avatar
		FROM comment_links WHERE comment_id=?`, commentId)
	var res CommentLink
	err := row.Scan(&res.CommentId, &res.ItemId, &res.RemoteGuid, &res.RemoteCommentId, &res.Avatar)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// DeleteComment removes a local comment along with its remote link.
func (repo *Repo) DeleteComment(id int64) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec(`DELETE FROM comment_links WHERE comment_id=?`, id); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM comments WHERE id=?`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func (repo *Repo) AddNotice(notice *Notice) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if notice.CreatedAt.IsZero() {
		notice.CreatedAt = time.Now().UTC()
	}
	_, err := repo.db.Exec(`INSERT INTO notices (created_at, level, text) VALUES(?, ?, ?)`,
		notice.CreatedAt, string(notice.Level), notice.Text)
	return err
}

// PopNotices returns all queued notices and removes them; each notice is shown once.
func (repo *Repo) PopNotices() ([]*Notice, error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	tx, err := repo.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.Query(`SELECT id, created_at, level, text FROM notices ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	res := make([]*Notice, 0)
	var ids []string
	for rows.Next() {
		var n Notice
		var level string
		if err = rows.Scan(&n.Id, &n.CreatedAt, &level, &n.Text); err != nil {
			rows.Close()
			return nil, err
		}
		n.Level = NoticeLevel(level)
		res = append(res, &n)
		ids = append(ids, fmt.Sprintf("%d", n.Id))
	}
	if err = rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	if len(ids) != 0 {
		query := fmt.Sprintf(`DELETE FROM notices WHERE id IN (%s)`, strings.Join(ids, ","))
		if _, err = tx.Exec(query); err != nil {
			return nil, err
		}
	}
	if err = tx.Commit(); err != nil {
		return nil, err
	}
	return res, nil
}

func (repo *Repo) HasFeedEntry(guidHash int64) (bool, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM feed_entries WHERE guid_hash=?`, guidHash)
	var count int
	if err := row.Scan(&count); err != nil {
		return false, err
	}
	return count != 0, nil
}

func (repo *Repo) AddFeedEntryIfNew(entry *FeedEntry) (isNew bool, err error) {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if entry.SeenAt.IsZero() {
		entry.SeenAt = time.Now().UTC()
	}
	_, err = repo.db.Exec(`INSERT INTO feed_entries (guid_hash, item_id, seen_at) VALUES (?, ?, ?)`,
		entry.GuidHash, entry.ItemId, entry.SeenAt)

	if err == nil {
		isNew = true
		return
	}

	// Duplicate key: entry with this hash was seen before
	if isDuplicateKey(err) {
		isNew = false
		err = nil
	}
	return
}

func (repo *Repo) GetFeedEntryCount() (int, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	row := repo.db.QueryRow(`SELECT COUNT(*) FROM feed_entries`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
