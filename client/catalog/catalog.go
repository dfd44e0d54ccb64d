// Package catalog declares the YouTube API operations the client can invoke.
//
// Each operation is a static Endpoint descriptor: HTTP verb, URL template,
// the path parameters the template requires, and the query parameters the
// upstream API recognizes. The table is fixed at process start; the generic
// invoker in the client package consumes it instead of one hand-written
// method per operation.
package catalog

import (
	"sort"
	"strings"
)

// Endpoint describes one YouTube API operation.
type Endpoint struct {
	// Name is the public tool/operation name. Names are part of the
	// published tool surface and never change spelling.
	Name string

	// Method is the HTTP verb: GET, POST or DELETE.
	Method string

	// Path is the URL template relative to the API base URL. Path
	// parameters appear as {placeholder} segments.
	Path string

	// Required lists every placeholder in Path, in template order.
	Required []string

	// Optional lists the recognized query parameters. Entries absent from
	// the caller's arguments are never sent on the wire.
	Optional []string

	// Doc is a one-line description used for tool registration.
	Doc string
}

// IsRequired reports whether name is a required path parameter.
func (e Endpoint) IsRequired(name string) bool {
	for _, p := range e.Required {
		if p == name {
			return true
		}
	}
	return false
}

// IsOptional reports whether name is a recognized query parameter.
func (e Endpoint) IsOptional(name string) bool {
	for _, p := range e.Optional {
		if p == name {
			return true
		}
	}
	return false
}

// Placeholders extracts the {param} names from the endpoint's path template,
// in order of appearance.
func (e Endpoint) Placeholders() []string {
	var out []string
	rest := e.Path
	for {
		i := strings.Index(rest, "{")
		if i < 0 {
			return out
		}
		j := strings.Index(rest[i:], "}")
		if j < 0 {
			return out
		}
		out = append(out, rest[i+1:i+j])
		rest = rest[i+j+1:]
	}
}

// endpoints is the full operation table. Paths and parameter sets are
// bit-exact with the upstream Data/Reporting/Analytics surface; optional
// parameters are kept case-insensitively sorted.
var endpoints = []Endpoint{
	{
		Name:     "get_jobs_job_reports",
		Method:   "GET",
		Path:     "/v1/jobs/{jobId}/reports",
		Required: []string{"jobId"},
		Optional: []string{"createdAfter", "onBehalfOfContentOwner", "pageSize", "pageToken", "startTimeAtOrAfter", "startTimeBefore"},
		Doc:      "Lists reports created for the specified reporting job.",
	},
	{
		Name:     "get_jobs_job_reports_report",
		Method:   "GET",
		Path:     "/v1/jobs/{jobId}/reports/{reportId}",
		Required: []string{"jobId", "reportId"},
		Optional: []string{"onBehalfOfContentOwner"},
		Doc:      "Retrieves the metadata of a specific report.",
	},
	{
		Name:     "delete_jobs_job",
		Method:   "DELETE",
		Path:     "/v1/jobs/{jobId}",
		Required: []string{"jobId"},
		Optional: []string{"onBehalfOfContentOwner"},
		Doc:      "Deletes a reporting job.",
	},
	{
		Name:     "get_jobs",
		Method:   "GET",
		Path:     "/v1/jobs",
		Optional: []string{"includeSystemManaged", "onBehalfOfContentOwner", "pageSize", "pageToken"},
		Doc:      "Lists reporting jobs owned by the caller or the content owner.",
	},
	{
		Name:     "get_media_resource_name",
		Method:   "GET",
		Path:     "/v1/media/{resourceName}",
		Required: []string{"resourceName"},
		Doc:      "Downloads a media resource, typically a generated report.",
	},
	{
		Name:     "get_reporttypes",
		Method:   "GET",
		Path:     "/v1/reportTypes",
		Optional: []string{"includeSystemManaged", "onBehalfOfContentOwner", "pageSize", "pageToken"},
		Doc:      "Lists report types that reporting jobs can be created for.",
	},
	{
		Name:     "delete_captions",
		Method:   "DELETE",
		Path:     "/captions",
		Optional: []string{"id", "onBehalfOf", "onBehalfOfContentOwner"},
		Doc:      "Deletes a caption track.",
	},
	{
		Name:     "get_captions",
		Method:   "GET",
		Path:     "/captions/{id}",
		Required: []string{"id"},
		Optional: []string{"onBehalfOf", "onBehalfOfContentOwner", "tfmt", "tlang"},
		Doc:      "Downloads a caption track, optionally converted or translated.",
	},
	{
		Name:     "list_captions",
		Method:   "GET",
		Path:     "/captions",
		Optional: []string{"id", "onBehalfOf", "onBehalfOfContentOwner", "part", "videoId"},
		Doc:      "Lists caption tracks associated with a video.",
	},
	{
		Name:     "delete_comments",
		Method:   "DELETE",
		Path:     "/comments",
		Optional: []string{"id"},
		Doc:      "Deletes a comment.",
	},
	{
		Name:     "add_comments_mark_as_spam",
		Method:   "POST",
		Path:     "/comments/markAsSpam",
		Optional: []string{"id"},
		Doc:      "Flags one or more comments as spam.",
	},
	{
		Name:     "add_comments_set_moderation_status",
		Method:   "POST",
		Path:     "/comments/setModerationStatus",
		Optional: []string{"banAuthor", "id", "moderationStatus"},
		Doc:      "Sets the moderation status of one or more comments.",
	},
	{
		Name:     "delete_live_broadcasts",
		Method:   "DELETE",
		Path:     "/liveBroadcasts",
		Optional: []string{"id", "onBehalfOfContentOwner", "onBehalfOfContentOwnerChannel"},
		Doc:      "Deletes a live broadcast.",
	},
	{
		Name:     "add_live_broadcasts_bind",
		Method:   "POST",
		Path:     "/liveBroadcasts/bind",
		Optional: []string{"id", "onBehalfOfContentOwner", "onBehalfOfContentOwnerChannel", "part", "streamId"},
		Doc:      "Binds a live broadcast to a video stream.",
	},
	{
		Name:     "add_live_broadcasts_control",
		Method:   "POST",
		Path:     "/liveBroadcasts/control",
		Optional: []string{"displaySlate", "id", "offsetTimeMs", "onBehalfOfContentOwner", "onBehalfOfContentOwnerChannel", "part", "walltime"},
		Doc:      "Controls the slate of a live broadcast.",
	},
	{
		Name:     "add_live_broadcasts_transition",
		Method:   "POST",
		Path:     "/liveBroadcasts/transition",
		Optional: []string{"broadcastStatus", "id", "onBehalfOfContentOwner", "onBehalfOfContentOwnerChannel", "part"},
		Doc:      "Transitions a live broadcast to a new status.",
	},
	{
		Name:     "delete_live_chat_bans",
		Method:   "DELETE",
		Path:     "/liveChat/bans",
		Optional: []string{"id"},
		Doc:      "Removes a ban from a live chat.",
	},
	{
		Name:     "delete_live_chat_messages",
		Method:   "DELETE",
		Path:     "/liveChat/messages",
		Optional: []string{"id"},
		Doc:      "Deletes a live chat message.",
	},
	{
		Name:     "delete_live_chat_moderators",
		Method:   "DELETE",
		Path:     "/liveChat/moderators",
		Optional: []string{"id"},
		Doc:      "Removes a moderator from a live chat.",
	},
	{
		Name:     "delete_videos",
		Method:   "DELETE",
		Path:     "/videos",
		Optional: []string{"id", "onBehalfOfContentOwner"},
		Doc:      "Deletes a video.",
	},
	{
		Name:     "get_videos_get_rating",
		Method:   "GET",
		Path:     "/videos/getRating",
		Optional: []string{"id", "onBehalfOfContentOwner"},
		Doc:      "Retrieves the authenticated user's rating of the given videos.",
	},
	{
		Name:     "add_videos_rate",
		Method:   "POST",
		Path:     "/videos/rate",
		Optional: []string{"id", "rating"},
		Doc:      "Adds a like or dislike rating to a video, or removes a rating.",
	},
	{
		Name:     "add_videos_report_abuse",
		Method:   "POST",
		Path:     "/videos/reportAbuse",
		Optional: []string{"onBehalfOfContentOwner"},
		Doc:      "Reports a video for containing abusive content.",
	},
	{
		Name:     "add_watermarks_set",
		Method:   "POST",
		Path:     "/watermarks/set",
		Optional: []string{"channelId", "onBehalfOfContentOwner"},
		Doc:      "Sets the watermark image for a channel.",
	},
	{
		Name:     "add_watermarks_unset",
		Method:   "POST",
		Path:     "/watermarks/unset",
		Optional: []string{"channelId", "onBehalfOfContentOwner"},
		Doc:      "Removes the watermark image from a channel.",
	},
	{
		Name:     "get_activities",
		Method:   "GET",
		Path:     "/activities",
		Optional: []string{"channelId", "home", "maxResults", "mine", "pageToken", "part", "publishedAfter", "publishedBefore", "regionCode"},
		Doc:      "Lists channel activity events matching the request criteria.",
	},
	{
		Name:     "add_channel_banners_insert",
		Method:   "POST",
		Path:     "/channelBanners/insert",
		Optional: []string{"channelId", "onBehalfOfContentOwner"},
		Doc:      "Uploads a channel banner image.",
	},
	{
		Name:     "delete_channel_sections",
		Method:   "DELETE",
		Path:     "/channelSections",
		Optional: []string{"id", "onBehalfOfContentOwner"},
		Doc:      "Deletes a channel section.",
	},
	{
		Name:     "get_channels",
		Method:   "GET",
		Path:     "/channels",
		Optional: []string{"categoryId", "forUsername", "hl", "id", "managedByMe", "maxResults", "mine", "mySubscribers", "onBehalfOfContentOwner", "pageToken", "part"},
		Doc:      "Lists channels matching the request criteria.",
	},
	{
		Name:     "get_comment_threads",
		Method:   "GET",
		Path:     "/commentThreads",
		Optional: []string{"allThreadsRelatedToChannelId", "channelId", "id", "maxResults", "moderationStatus", "order", "pageToken", "part", "searchTerms", "textFormat", "videoId"},
		Doc:      "Lists comment threads matching the request criteria.",
	},
	{
		Name:     "get_fanfundingevents",
		Method:   "GET",
		Path:     "/fanFundingEvents",
		Optional: []string{"hl", "maxResults", "pageToken", "part"},
		Doc:      "Lists fan funding events for the authenticated user's channel.",
	},
	{
		Name:     "get_guecategories",
		Method:   "GET",
		Path:     "/guideCategories",
		Optional: []string{"hl", "id", "part", "regionCode"},
		Doc:      "Lists guide categories that can be associated with channels.",
	},
	{
		Name:     "get_languages",
		Method:   "GET",
		Path:     "/i18nLanguages",
		Optional: []string{"hl", "part"},
		Doc:      "Lists application languages the YouTube website supports.",
	},
	{
		Name:     "get_regions",
		Method:   "GET",
		Path:     "/i18nRegions",
		Optional: []string{"hl", "part"},
		Doc:      "Lists content regions the YouTube website supports.",
	},
	{
		Name:     "delete_livestreams",
		Method:   "DELETE",
		Path:     "/liveStreams",
		Optional: []string{"id", "onBehalfOfContentOwner", "onBehalfOfContentOwnerChannel"},
		Doc:      "Deletes a video stream.",
	},
	{
		Name:     "delete_play_list_items",
		Method:   "DELETE",
		Path:     "/playlistItems",
		Optional: []string{"id", "onBehalfOfContentOwner"},
		Doc:      "Deletes a playlist item.",
	},
	{
		Name:     "delete_playlists",
		Method:   "DELETE",
		Path:     "/playlists",
		Optional: []string{"id", "onBehalfOfContentOwner"},
		Doc:      "Deletes a playlist.",
	},
	{
		Name:   "get_search",
		Method: "GET",
		Path:   "/search",
		Optional: []string{
			"channelId", "channelType", "eventType", "forContentOwner", "forDeveloper",
			"forMine", "location", "locationRadius", "maxResults", "onBehalfOfContentOwner",
			"order", "pageToken", "part", "publishedAfter", "publishedBefore", "q",
			"regionCode", "relatedToVideoId", "relevanceLanguage", "safeSearch", "topicId",
			"type", "videoCaption", "videoCategoryId", "videoDefinition", "videoDimension",
			"videoDuration", "videoEmbeddable", "videoLicense", "videoSyndicated", "videoType",
		},
		Doc: "Searches for videos, channels and playlists matching the query.",
	},
	{
		Name:     "get_sponsors",
		Method:   "GET",
		Path:     "/sponsors",
		Optional: []string{"filter", "maxResults", "pageToken", "part"},
		Doc:      "Lists sponsors for the authenticated user's channel.",
	},
	{
		Name:     "delete_subscriptions",
		Method:   "DELETE",
		Path:     "/subscriptions",
		Optional: []string{"id"},
		Doc:      "Deletes a subscription.",
	},
	{
		Name:     "get_superchatevents",
		Method:   "GET",
		Path:     "/superChatEvents",
		Optional: []string{"hl", "maxResults", "pageToken", "part"},
		Doc:      "Lists Super Chat events for the authenticated user's channel.",
	},
	{
		Name:     "add_thumbnails_set",
		Method:   "POST",
		Path:     "/thumbnails/set",
		Optional: []string{"onBehalfOfContentOwner", "videoId"},
		Doc:      "Sets a custom thumbnail for a video.",
	},
	{
		Name:     "get_video_abuse_report_reasons",
		Method:   "GET",
		Path:     "/videoAbuseReportReasons",
		Optional: []string{"hl", "part"},
		Doc:      "Lists reasons that can be used to report abusive videos.",
	},
	{
		Name:     "get_veocategories",
		Method:   "GET",
		Path:     "/videoCategories",
		Optional: []string{"hl", "id", "part", "regionCode"},
		Doc:      "Lists video categories that uploaded videos can be associated with.",
	},
	{
		Name:     "delete_groupitems",
		Method:   "DELETE",
		Path:     "/groupItems",
		Optional: []string{"id", "onBehalfOfContentOwner"},
		Doc:      "Removes an item from an Analytics group.",
	},
	{
		Name:     "delete_groups",
		Method:   "DELETE",
		Path:     "/groups",
		Optional: []string{"id", "onBehalfOfContentOwner"},
		Doc:      "Deletes an Analytics group.",
	},
	{
		Name:     "get_reports",
		Method:   "GET",
		Path:     "/reports",
		Optional: []string{"currency", "dimensions", "end", "filters", "ids", "include", "max", "metrics", "sort", "start"},
		Doc:      "Runs an Analytics report query over dimensions, metrics and filters.",
	},
}

var byName map[string]Endpoint

func init() {
	byName = make(map[string]Endpoint, len(endpoints))
	for _, ep := range endpoints {
		byName[ep.Name] = ep
	}
}

// All returns every endpoint in declaration order. The returned slice is a
// copy; callers may not mutate the catalog.
func All() []Endpoint {
	out := make([]Endpoint, len(endpoints))
	copy(out, endpoints)
	return out
}

// Lookup returns the endpoint registered under name.
func Lookup(name string) (Endpoint, bool) {
	ep, ok := byName[name]
	return ep, ok
}

// Names returns all operation names, sorted.
func Names() []string {
	out := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		out = append(out, ep.Name)
	}
	sort.Strings(out)
	return out
}
