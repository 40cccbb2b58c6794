package dto

// Imgur API v3 wraps every payload in {"data": ..., "success": ..., "status": ...}
type ImgurResponse[T any] struct {
	Data    T    `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

type ImgurImage struct {
	Id   string `json:"id"`
	Type string `json:"type"` // image/gif
	Link string `json:"link"`
	Mp4  string `json:"mp4"`
}

type ImgurCredits struct {
	UserRemaining   int `json:"UserRemaining"`
	ClientRemaining int `json:"ClientRemaining"`
}

type ImgurError struct {
	Error string `json:"error"`
}

type GfycatResponse struct {
	GfyItem GfyItem `json:"gfyItem"`
}

type GfyItem struct {
	GfyName   string `json:"gfyName"`
	Max2mbGif string `json:"max2mbGif"`
	Mp4Url    string `json:"mp4Url"`
}
