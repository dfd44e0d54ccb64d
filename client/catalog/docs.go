package catalog

// paramDocs maps parameter names to the one-line descriptions attached to
// tool schemas. Parameters shared across operations share a description.
var paramDocs = map[string]string{
	"allThreadsRelatedToChannelId":  "Returns all threads associated with the channel, including replies to its videos",
	"banAuthor":                     "Whether to also ban the comment author (true/false)",
	"broadcastStatus":               "Status to transition the broadcast to: testing, live or complete",
	"categoryId":                    "Guide category ID to filter channels by",
	"channelId":                     "YouTube channel ID",
	"channelType":                   "Restricts a search to a particular type of channel",
	"createdAfter":                  "Only return reports created after this RFC3339 timestamp",
	"currency":                      "Currency for estimated revenue metrics (ISO 4217)",
	"dimensions":                    "Comma-separated list of YouTube Analytics dimensions",
	"displaySlate":                  "Whether the slate is being enabled or disabled (true/false)",
	"end":                           "End date of the report query (YYYY-MM-DD)",
	"eventType":                     "Restricts a search to broadcast events: completed, live or upcoming",
	"filter":                        "Restricts the returned sponsors: all or newest",
	"filters":                       "Filter expression restricting the Analytics data returned",
	"forContentOwner":               "Restricts the search to videos owned by the content owner (true/false)",
	"forDeveloper":                  "Restricts the search to videos uploaded via the developer's app (true/false)",
	"forMine":                       "Restricts the search to videos owned by the authenticated user (true/false)",
	"forUsername":                   "YouTube username to look up a channel for",
	"hl":                            "Language code for localized resource metadata (for example en_US)",
	"home":                          "Returns the activity feed displayed on the user's home page (true/false)",
	"id":                            "Resource identifier, or a comma-separated list of identifiers",
	"ids":                           "Channel or content-owner identifier the report applies to",
	"include":                       "Whether to include historical data in the report (true/false)",
	"includeSystemManaged":          "Whether to include system-managed entries (true/false)",
	"jobId":                         "ID of the reporting job",
	"location":                      "Geographic point to search around (latitude,longitude)",
	"locationRadius":                "Radius around the location to search within (for example 5km)",
	"managedByMe":                   "Returns only channels managed by the content owner (true/false)",
	"max":                           "Maximum number of rows to include in the report",
	"maxResults":                    "Maximum number of items to return in the result set",
	"metrics":                       "Comma-separated list of YouTube Analytics metrics",
	"mine":                          "Restricts the request to the authenticated user's resources (true/false)",
	"moderationStatus":              "Moderation status to set or filter by: heldForReview, likelySpam, published or rejected",
	"mySubscribers":                 "Returns channels subscribed to the authenticated user (true/false)",
	"offsetTimeMs":                  "Offset in milliseconds at which the slate change should occur",
	"onBehalfOf":                    "ID of the user the request is made on behalf of",
	"onBehalfOfContentOwner":        "Content owner the request is made on behalf of",
	"onBehalfOfContentOwnerChannel": "Channel ID of the channel the request is made on behalf of",
	"order":                         "Ordering of the returned items",
	"pageSize":                      "Number of results to return per page",
	"pageToken":                     "Token identifying the result page to return",
	"part":                          "Comma-separated list of resource parts to include in the response",
	"publishedAfter":                "Only return resources created after this RFC3339 timestamp",
	"publishedBefore":               "Only return resources created before this RFC3339 timestamp",
	"q":                             "Search query term",
	"rating":                        "Rating to apply: like, dislike or none",
	"regionCode":                    "ISO 3166-1 alpha-2 country code to filter by",
	"relatedToVideoId":              "Returns videos related to the given video ID",
	"relevanceLanguage":             "Returns results most relevant to the given language",
	"reportId":                      "ID of the report to retrieve",
	"resourceName":                  "Name of the media resource to download",
	"safeSearch":                    "Whether to include restricted content: moderate, none or strict",
	"searchTerms":                   "Only return comment threads containing these search terms",
	"sort":                          "Comma-separated list of dimensions or metrics to sort the report by",
	"start":                         "Start date of the report query (YYYY-MM-DD)",
	"startTimeAtOrAfter":            "Only return reports whose period starts at or after this timestamp",
	"startTimeBefore":               "Only return reports whose period starts before this timestamp",
	"streamId":                      "ID of the video stream to bind the broadcast to",
	"textFormat":                    "Format of returned comment text: html or plainText",
	"tfmt":                          "Caption track format: sbv, scc, srt, ttml or vtt",
	"tlang":                         "Language to translate the caption track into (ISO 639-1)",
	"topicId":                       "Freebase topic ID to filter results by",
	"type":                          "Restricts a search to a resource type: channel, playlist or video",
	"videoCaption":                  "Filters search results on caption availability: any, closedCaption or none",
	"videoCategoryId":               "Video category ID to filter by",
	"videoDefinition":               "Filters search results on definition: any, high or standard",
	"videoDimension":                "Filters search results on dimension: 2d, 3d or any",
	"videoDuration":                 "Filters search results on duration: any, long, medium or short",
	"videoEmbeddable":               "Restricts the search to embeddable videos: any or true",
	"videoId":                       "YouTube video ID",
	"videoLicense":                  "Filters search results on license: any, creativeCommon or youtube",
	"videoSyndicated":               "Restricts the search to syndicated videos: any or true",
	"videoType":                     "Restricts the search to a video type: any, episode or movie",
	"walltime":                      "Wall-clock time at which the slate change should occur (RFC3339)",
}

// ParamDoc returns the description for a parameter name, or an empty string
// when none is registered.
func ParamDoc(name string) string {
	return paramDocs[name]
}
