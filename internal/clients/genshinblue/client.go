// Package genshinblue is the client for the genshin.blue community API
// (served from genshin.jmp.blue). The API has reshaped its responses
// several times over its life, so instead of binding to fixed structs
// every fetch sniffs the payload shape and runs it through the item
// normalizer.
package genshinblue

//go:generate mockgen -destination=mock/mock_client.go -package=genshinbluemock github.com/DylanBreuer/GenshinTools/internal/clients/genshinblue Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/DylanBreuer/GenshinTools/internal/entities/genshin"
	"github.com/DylanBreuer/GenshinTools/internal/errors"
)

// FetchError reports a non-success HTTP status from the upstream API.
// It aborts the whole run: a failing endpoint usually means an API
// contract change the operator needs to see, not a transient blip.
type FetchError struct {
	Endpoint   string
	StatusCode int
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: upstream returned status %d", e.Endpoint, e.StatusCode)
}

// Client defines the interface for upstream game data fetches
type Client interface {
	// FetchCharacters returns every character with talents and build
	// recommendations attached
	FetchCharacters(ctx context.Context) ([]*genshin.CharacterPayload, error)

	// FetchCharacter returns one character by its slug
	FetchCharacter(ctx context.Context, slug string) (*genshin.CharacterPayload, error)

	// FetchMaterials returns every material, walking the per-category
	// endpoints when the index only lists categories
	FetchMaterials(ctx context.Context) ([]*genshin.Material, error)

	// FetchAllMaterials returns every material from the legacy
	// single-payload endpoint
	FetchAllMaterials(ctx context.Context) ([]*genshin.Material, error)

	// FetchWeapons returns every weapon
	FetchWeapons(ctx context.Context) ([]*genshin.Weapon, error)

	// FetchArtifactSets returns every artifact set
	FetchArtifactSets(ctx context.Context) ([]*genshin.ArtifactSet, error)
}

// Config contains configuration options for the genshin.blue client.
type Config struct {
	// BaseURL for the API (optional, defaults to https://genshin.jmp.blue)
	BaseURL string
	// Language is an optional lang query parameter added to every request
	Language string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the default HTTP client, mainly for tests
	HTTPClient *http.Client
	// Vocabulary overrides the built-in source vocabulary
	Vocabulary *Vocabulary
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://genshin.jmp.blue"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.Vocabulary == nil {
		cfg.Vocabulary = DefaultVocabulary()
	}
	return nil
}

type client struct {
	baseURL    string
	language   string
	httpClient *http.Client
	vocab      *Vocabulary
}

// New creates a new genshin.blue client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &client{
		baseURL:    cfg.BaseURL,
		language:   cfg.Language,
		httpClient: httpClient,
		vocab:      cfg.Vocabulary,
	}, nil
}

// getJSON issues one GET against the API and decodes the body. The
// shape is deliberately not validated here; that is the normalizer's
// job.
func (c *client) getJSON(ctx context.Context, path string) (Value, error) {
	endpoint := c.baseURL + path
	if c.language != "" {
		endpoint += "?lang=" + url.QueryEscape(c.language)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Value{}, errors.Wrapf(err, "failed to build request for %s", path)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Value{}, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to reach %s", path)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Value{}, &FetchError{Endpoint: path, StatusCode: resp.StatusCode}
	}

	v, err := ParseValue(resp.Body)
	if err != nil {
		return Value{}, errors.Wrapf(err, "failed to decode response from %s", path)
	}
	return v, nil
}

// catalogPage is the sniffed shape of a catalog listing: either an
// index of slugs to fetch individually, or the records inline
type catalogPage struct {
	slugs []string
	items []RawItem
}

// parseCatalogPage dispatches on the shapes the catalog endpoints have
// shipped: a slug index, a flat list of records, or a slug-keyed map
// of records. Wrapper envelopes unwrap transparently.
func parseCatalogPage(v Value) catalogPage {
	switch v.Kind() {
	case KindSequence:
		if slugs, ok := stringSeq(v); ok {
			return catalogPage{slugs: slugs}
		}
		var items []RawItem
		for i, el := range v.Items() {
			if el.Kind() != KindMapping {
				continue
			}
			items = append(items, RawItem{Fields: el, Path: []string{strconv.Itoa(i)}})
		}
		return catalogPage{items: items}
	case KindMapping:
		if !looksLikeItem(v) {
			if child, ok := wrapperChild(v); ok {
				return parseCatalogPage(child)
			}
		}
		var items []RawItem
		for _, key := range v.Keys() {
			el, _ := v.Get(key)
			if el.Kind() != KindMapping {
				continue
			}
			items = append(items, RawItem{Fields: el, Path: []string{key}})
		}
		return catalogPage{items: items}
	}
	return catalogPage{}
}

// stringSeq reports whether the sequence holds only string scalars and
// returns them
func stringSeq(v Value) ([]string, bool) {
	if v.Kind() != KindSequence || v.Len() == 0 {
		return nil, false
	}
	out := make([]string, 0, v.Len())
	for _, el := range v.Items() {
		s, ok := el.Str()
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// detailFields unwraps an envelope around a detail payload, if any
func detailFields(v Value) Value {
	if v.Kind() == KindMapping && !looksLikeItem(v) {
		if child, ok := wrapperChild(v); ok && child.Kind() == KindMapping {
			return child
		}
	}
	return v
}

func (c *client) FetchCharacters(ctx context.Context) ([]*genshin.CharacterPayload, error) {
	slog.Info("Calling genshin.blue to list characters")
	v, err := c.getJSON(ctx, "/characters")
	if err != nil {
		return nil, err
	}

	page := parseCatalogPage(v)
	payloads := make([]*genshin.CharacterPayload, 0, len(page.slugs)+len(page.items))
	for _, slug := range page.slugs {
		payload, err := c.FetchCharacter(ctx, slug)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, payload)
	}
	for _, item := range page.items {
		payload := buildCharacterPayload(item, "")
		if payload == nil {
			slog.Warn("Skipping character without a usable name", "path", strings.Join(item.Path, "/"))
			continue
		}
		payloads = append(payloads, payload)
	}

	slog.Info("Got character payloads", "count", len(payloads))
	return payloads, nil
}

func (c *client) FetchCharacter(ctx context.Context, slug string) (*genshin.CharacterPayload, error) {
	v, err := c.getJSON(ctx, "/characters/"+url.PathEscape(slug))
	if err != nil {
		return nil, err
	}

	fields := detailFields(v)
	if fields.Kind() != KindMapping {
		return nil, errors.Internalf("unexpected payload shape for character %s", slug)
	}

	payload := buildCharacterPayload(RawItem{Fields: fields}, slug)
	if payload == nil {
		return nil, errors.Internalf("character %s has no usable name", slug)
	}

	slog.Debug("Loaded character details", "slug", slug, "name", payload.Character.Name)
	return payload, nil
}

func (c *client) FetchMaterials(ctx context.Context) ([]*genshin.Material, error) {
	slog.Info("Calling genshin.blue to list materials")
	v, err := c.getJSON(ctx, "/materials")
	if err != nil {
		return nil, err
	}

	switch v.Kind() {
	case KindSequence:
		if categories, ok := stringSeq(v); ok {
			return c.fetchMaterialCategories(ctx, categories)
		}
		// flat list of material records; the type fields decide
		return c.collectMaterials(Discover(v), ""), nil
	case KindMapping:
		if materials, found := c.materialsFromTree(v); found {
			return materials, nil
		}
		// no items anywhere, so the keys are a category index
		return c.fetchMaterialCategories(ctx, v.Keys())
	}
	return nil, errors.Internal("unexpected payload shape for materials")
}

func (c *client) FetchAllMaterials(ctx context.Context) ([]*genshin.Material, error) {
	slog.Info("Calling genshin.blue to list materials", "endpoint", "/materials/all")
	v, err := c.getJSON(ctx, "/materials/all")
	if err != nil {
		return nil, err
	}
	materials := c.collectMaterials(Discover(v), "")
	slog.Info("Got materials", "count", len(materials))
	return materials, nil
}

// materialsFromTree walks an inline materials tree, typing each item
// with the top-level key it was grouped under. found is false when the
// tree holds no items at all, meaning the keys are a category index.
func (c *client) materialsFromTree(v Value) (materials []*genshin.Material, found bool) {
	for _, key := range v.Keys() {
		child, _ := v.Get(key)
		items := DiscoverAt(child, []string{key})
		if len(items) > 0 {
			found = true
		}
		materials = append(materials, c.collectMaterials(items, key)...)
	}
	if !found {
		return nil, false
	}
	slog.Info("Got materials", "count", len(materials))
	return materials, true
}

func (c *client) fetchMaterialCategories(ctx context.Context, categories []string) ([]*genshin.Material, error) {
	var materials []*genshin.Material
	for _, category := range categories {
		batch, err := c.fetchMaterialCategory(ctx, category)
		if err != nil {
			return nil, err
		}
		materials = append(materials, batch...)
	}
	slog.Info("Got materials", "count", len(materials), "categories", len(categories))
	return materials, nil
}

func (c *client) fetchMaterialCategory(ctx context.Context, category string) ([]*genshin.Material, error) {
	v, err := c.getJSON(ctx, "/materials/"+url.PathEscape(category))
	if err != nil {
		return nil, err
	}

	// a category payload of bare slugs needs one more fetch per slug
	if slugs, ok := stringSeq(v); ok {
		materials := make([]*genshin.Material, 0, len(slugs))
		for _, slug := range slugs {
			detail, err := c.getJSON(ctx, "/materials/"+url.PathEscape(category)+"/"+url.PathEscape(slug))
			if err != nil {
				return nil, err
			}
			fields := detailFields(detail)
			if fields.Kind() != KindMapping {
				slog.Warn("Skipping material with unexpected detail shape", "category", category, "slug", slug)
				continue
			}
			item := RawItem{Fields: fields, Path: []string{slug}}
			if m := buildMaterial(item, category, c.vocab); m != nil {
				materials = append(materials, m)
			}
		}
		return materials, nil
	}

	// paths start at this payload's root, so a region-keyed category
	// tree puts the region in the first segment
	return c.collectMaterials(Discover(v), category), nil
}

// collectMaterials builds records from discovered items, dropping the
// ones without a usable name
func (c *client) collectMaterials(items []RawItem, typeValue string) []*genshin.Material {
	materials := make([]*genshin.Material, 0, len(items))
	for _, item := range items {
		m := buildMaterial(item, typeValue, c.vocab)
		if m == nil {
			slog.Warn("Skipping material without a usable name", "path", strings.Join(item.Path, "/"))
			continue
		}
		materials = append(materials, m)
	}
	return materials
}

func (c *client) FetchWeapons(ctx context.Context) ([]*genshin.Weapon, error) {
	slog.Info("Calling genshin.blue to list weapons")
	v, err := c.getJSON(ctx, "/weapons")
	if err != nil {
		return nil, err
	}

	page := parseCatalogPage(v)
	weapons := make([]*genshin.Weapon, 0, len(page.slugs)+len(page.items))
	for _, slug := range page.slugs {
		weapon, err := c.fetchWeapon(ctx, slug)
		if err != nil {
			return nil, err
		}
		weapons = append(weapons, weapon)
	}
	for _, item := range page.items {
		weapon := buildWeapon(item, "", c.vocab)
		if weapon == nil {
			slog.Warn("Skipping weapon without a usable name", "path", strings.Join(item.Path, "/"))
			continue
		}
		weapons = append(weapons, weapon)
	}

	slog.Info("Got weapons", "count", len(weapons))
	return weapons, nil
}

func (c *client) fetchWeapon(ctx context.Context, slug string) (*genshin.Weapon, error) {
	v, err := c.getJSON(ctx, "/weapons/"+url.PathEscape(slug))
	if err != nil {
		return nil, err
	}

	fields := detailFields(v)
	if fields.Kind() != KindMapping {
		return nil, errors.Internalf("unexpected payload shape for weapon %s", slug)
	}

	weapon := buildWeapon(RawItem{Fields: fields}, slug, c.vocab)
	if weapon == nil {
		return nil, errors.Internalf("weapon %s has no usable name", slug)
	}

	slog.Debug("Loaded weapon details", "slug", slug, "name", weapon.Name)
	return weapon, nil
}

func (c *client) FetchArtifactSets(ctx context.Context) ([]*genshin.ArtifactSet, error) {
	slog.Info("Calling genshin.blue to list artifact sets")
	v, err := c.getJSON(ctx, "/artifacts")
	if err != nil {
		return nil, err
	}

	page := parseCatalogPage(v)
	sets := make([]*genshin.ArtifactSet, 0, len(page.slugs)+len(page.items))
	for _, slug := range page.slugs {
		set, err := c.fetchArtifactSet(ctx, slug)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	for _, item := range page.items {
		set := buildArtifactSet(item, "")
		if set == nil {
			slog.Warn("Skipping artifact set without a usable name", "path", strings.Join(item.Path, "/"))
			continue
		}
		sets = append(sets, set)
	}

	slog.Info("Got artifact sets", "count", len(sets))
	return sets, nil
}

func (c *client) fetchArtifactSet(ctx context.Context, slug string) (*genshin.ArtifactSet, error) {
	v, err := c.getJSON(ctx, "/artifacts/"+url.PathEscape(slug))
	if err != nil {
		return nil, err
	}

	fields := detailFields(v)
	if fields.Kind() != KindMapping {
		return nil, errors.Internalf("unexpected payload shape for artifact set %s", slug)
	}

	set := buildArtifactSet(RawItem{Fields: fields}, slug)
	if set == nil {
		return nil, errors.Internalf("artifact set %s has no usable name", slug)
	}

	slog.Debug("Loaded artifact set details", "slug", slug, "name", set.Name)
	return set, nil
}
