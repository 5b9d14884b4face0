package workspace

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Ju21000/planing-ia-2/core/model"
	"github.com/Ju21000/planing-ia-2/infra/logger"
)

const notionAPIVersion = "2022-06-28"

// Config holds the workspace sync settings.
type Config struct {
	Enabled bool `json:"enabled"`
	// Token is the integration secret.
	Token string `json:"token"`
	// ParentPageID is the page under which the roster database is created.
	ParentPageID string `json:"parent_page_id"`
	// APIURL overrides the API endpoint, mainly for tests.
	APIURL         string `json:"api_url"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.APIURL == "" {
		c.APIURL = "https://api.notion.com"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 30
	}
}

// Validate checks mandatory fields when sync is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Token == "" {
		return fmt.Errorf("token is required")
	}
	if c.ParentPageID == "" {
		return fmt.Errorf("parent_page_id is required")
	}
	return nil
}

// NotionClient pushes a completed roster to a Notion workspace: one database
// per run, one page per entry.
type NotionClient struct {
	cfg    Config
	client *http.Client
	log    logger.Logger
}

// NewNotionClient creates a workspace sync client.
func NewNotionClient(cfg Config) *NotionClient {
	cfg.SetDefaults()
	return &NotionClient{
		cfg:    cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		log:    logger.New("workspace-sync"),
	}
}

// SyncRoster creates a roster database titled after the source document and
// fills it with one page per entry. Entries whose date cannot be rendered are
// logged and skipped; the database id is returned.
func (c *NotionClient) SyncRoster(ctx context.Context, title, siteMarker string, entries []model.ScheduleEntry) (string, error) {
	dbID, err := c.createDatabase(ctx, title)
	if err != nil {
		return "", fmt.Errorf("create database: %w", err)
	}

	synced := 0
	for _, e := range entries {
		if err := c.createPage(ctx, dbID, siteMarker, e); err != nil {
			c.log.Warnf("skip entry %s %s: %v", e.Person, e.Date, err)
			continue
		}
		synced++
	}
	c.log.Infof("synced %d/%d entries to database %s", synced, len(entries), dbID)
	return dbID, nil
}

func (c *NotionClient) createDatabase(ctx context.Context, title string) (string, error) {
	body := map[string]any{
		"parent": map[string]any{"page_id": c.cfg.ParentPageID},
		"title": []map[string]any{
			{"type": "text", "text": map[string]any{"content": "Planning - " + title}},
		},
		"properties": map[string]any{
			"NOM":             map[string]any{"title": map[string]any{}},
			"Présence (FNAC)": map[string]any{"checkbox": map[string]any{}},
			"Période":         map[string]any{"date": map[string]any{}},
			"Heure de Repas":  map[string]any{"rich_text": map[string]any{}},
			"En Téléphonie":   map[string]any{"rich_text": map[string]any{}},
			"% Tel":           map[string]any{"number": map[string]any{"format": "percent"}},
			"Description":     map[string]any{"rich_text": map[string]any{}},
		},
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/v1/databases", body, &resp); err != nil {
		return "", err
	}
	return resp.ID, nil
}

func (c *NotionClient) createPage(ctx context.Context, dbID, siteMarker string, e model.ScheduleEntry) error {
	period, err := dateObject(e)
	if err != nil {
		return err
	}

	duty := ""
	if e.PhoneDuty != "" && e.PhoneDuty != model.PhoneDutyNone {
		duty = string(e.PhoneDuty)
	}

	body := map[string]any{
		"parent": map[string]any{"database_id": dbID},
		"properties": map[string]any{
			"NOM": map[string]any{
				"title": []map[string]any{{"text": map[string]any{"content": e.Person}}},
			},
			"Présence (FNAC)": map[string]any{"checkbox": e.OnSite(siteMarker)},
			"Période":         map[string]any{"date": period},
			"Heure de Repas": map[string]any{
				"rich_text": []map[string]any{{"text": map[string]any{"content": e.MealBreak}}},
			},
			"En Téléphonie": map[string]any{
				"rich_text": []map[string]any{{"text": map[string]any{"content": duty}}},
			},
			"% Tel": map[string]any{"number": e.PhonePercentage / 100},
			"Description": map[string]any{
				"rich_text": []map[string]any{{"text": map[string]any{"content": e.Description}}},
			},
		},
	}
	return c.post(ctx, "/v1/pages", body, nil)
}

// dateObject renders the entry's calendar day as a Notion date value: an
// all-day date without times, a start/end range otherwise.
func dateObject(e model.ScheduleEntry) (map[string]any, error) {
	day, ok := model.ParseDate(e.Date)
	if !ok {
		return nil, fmt.Errorf("invalid date %q", e.Date)
	}
	if !e.HasShift() {
		return map[string]any{"start": day.Format("2006-01-02")}, nil
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", day.Format("2006-01-02")+" "+e.StartTime, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid start time %q", e.StartTime)
	}
	end, err := time.ParseInLocation("2006-01-02 15:04", day.Format("2006-01-02")+" "+e.EndTime, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid end time %q", e.EndTime)
	}
	return map[string]any{
		"start": start.Format(time.RFC3339),
		"end":   end.Format(time.RFC3339),
	}, nil
}

func (c *NotionClient) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Notion-Version", notionAPIVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Message != "" {
			return fmt.Errorf("notion api %s: %s", apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("notion api status %d", resp.StatusCode)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
