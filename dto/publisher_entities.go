package dto

type TwitterUser struct {
	IdStr      string `json:"id_str"`
	ScreenName string `json:"screen_name"`
}

type TwitterMedia struct {
	MediaIdString string `json:"media_id_string"`
}

type TwitterStatus struct {
	IdStr string `json:"id_str"`
	Text  string `json:"text"`
}

type TwitterErrors struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

type MastodonAccount struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Acct     string `json:"acct"`
}

type MastodonAttachment struct {
	Id   string  `json:"id"`
	Type string  `json:"type"`
	Url  *string `json:"url"` // null while the server is still processing
}

type MastodonStatus struct {
	Id  string `json:"id"`
	Url string `json:"url"`
}

type MastodonError struct {
	Error string `json:"error"`
}
