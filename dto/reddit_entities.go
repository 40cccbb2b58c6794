package dto

type RedditToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error"`
}

type RedditListing struct {
	Kind string `json:"kind"`
	Data struct {
		After    string `json:"after"`
		Children []struct {
			Kind string         `json:"kind"`
			Data RedditPostData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type RedditPostData struct {
	Id          string       `json:"id"`
	Name        string       `json:"name"`
	Title       string       `json:"title"`
	Permalink   string       `json:"permalink"`
	Url         string       `json:"url"`
	Over18      bool         `json:"over_18"`
	IsSelf      bool         `json:"is_self"`
	Spoiler     bool         `json:"spoiler"`
	Stickied    bool         `json:"stickied"`
	Media       *RedditMedia `json:"media"`
	SecureMedia *RedditMedia `json:"secure_media"`
}

type RedditMedia struct {
	RedditVideo *struct {
		FallbackUrl string `json:"fallback_url"`
		IsGif       bool   `json:"is_gif"`
	} `json:"reddit_video"`
}
