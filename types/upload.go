package types

// ImageItem 응답에 실리는 첨부 이미지
type ImageItem struct {
	ImageID      uint64 `json:"image_id"`
	OriginalName string `json:"original_name"`
	URL          string `json:"url"`
	ContentType  string `json:"content_type"`
	FileSize     int64  `json:"file_size"`
}

// ImageRoutePrefix 이미지 조회 경로. URL = ImageRoutePrefix + stored_name
const ImageRoutePrefix = "/api/posts/images/"
