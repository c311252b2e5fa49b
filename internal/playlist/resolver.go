package playlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/2beens/lifearchitect/internal/telemetry/tracing"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2/clientcredentials"
)

var ErrInvalidPlaylistURL = errors.New("not a spotify playlist url")

const (
	oneHour           = 60 * 60
	infoCacheExpire   = oneHour * 12
	infoCacheSize     = 1024 * 1024
	embedURLFormat    = "https://open.spotify.com/embed/playlist/%s"
	playlistURLFormat = "https://open.spotify.com/playlist/%s"
)

type Info struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	EmbedURL    string `json:"embedUrl"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Owner       string `json:"owner,omitempty"`
	TrackCount  int    `json:"trackCount,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	// Resolved is set when the details come from the Spotify API.
	Resolved bool `json:"resolved"`
}

// ParseID extracts the playlist id from an open.spotify.com link or a
// spotify:playlist: URI.
func ParseID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if id, ok := strings.CutPrefix(raw, "spotify:playlist:"); ok && id != "" {
		return id, nil
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host != "open.spotify.com" {
		return "", fmt.Errorf("%w: %q", ErrInvalidPlaylistURL, raw)
	}
	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	// open.spotify.com/embed/playlist/<id> and /intl-xx/playlist/<id>
	for i := 0; i < len(parts)-1; i++ {
		if parts[i] == "playlist" && parts[i+1] != "" {
			return parts[i+1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPlaylistURL, raw)
}

type playlistClient interface {
	GetPlaylist(ctx context.Context, playlistID spotify.ID, opts ...spotify.RequestOption) (*spotify.FullPlaylist, error)
}

// Resolver turns a playlist link into displayable playlist details. Without
// API credentials it still returns the id and embed link.
type Resolver struct {
	client playlistClient
	cache  *freecache.Cache
}

func NewResolver(clientID, clientSecret string) *Resolver {
	if clientID == "" || clientSecret == "" {
		log.Debugln("playlist: no spotify credentials, playlist details disabled")
		return NewResolverWithClient(nil)
	}

	cfg := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     spotifyauth.TokenURL,
	}
	return NewResolverWithClient(spotify.New(cfg.Client(context.Background())))
}

func NewResolverWithClient(client playlistClient) *Resolver {
	return &Resolver{
		client: client,
		cache:  freecache.NewCache(infoCacheSize),
	}
}

func (r *Resolver) Resolve(ctx context.Context, playlistURL string) (_ Info, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "playlist.resolver.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	id, err := ParseID(playlistURL)
	if err != nil {
		return Info{}, err
	}
	info := Info{
		ID:       id,
		URL:      fmt.Sprintf(playlistURLFormat, id),
		EmbedURL: fmt.Sprintf(embedURLFormat, id),
	}
	if r.client == nil {
		return info, nil
	}

	if cached, err := r.cache.Get([]byte(id)); err == nil {
		if err := json.Unmarshal(cached, &info); err == nil {
			return info, nil
		}
	}

	p, err := r.client.GetPlaylist(ctx, spotify.ID(id))
	if err != nil {
		// the embed link is still usable
		log.Errorf("playlist: get playlist %s: %s", id, err)
		return info, nil
	}

	info.Resolved = true
	info.Name = p.Name
	info.Description = p.Description
	info.Owner = p.Owner.DisplayName
	info.TrackCount = int(p.Tracks.Total)
	if len(p.Images) > 0 {
		info.ImageURL = p.Images[0].URL
	}
	if link, ok := p.ExternalURLs["spotify"]; ok && link != "" {
		info.URL = link
	}

	if infoBytes, err := json.Marshal(info); err == nil {
		if err := r.cache.Set([]byte(id), infoBytes, infoCacheExpire); err != nil {
			log.Errorf("playlist: cache %s: %s", id, err)
		}
	}
	return info, nil
}
