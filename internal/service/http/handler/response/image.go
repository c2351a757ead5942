package response

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type EditImage struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

func NewEditImage(imageURL string) *EditImage {
	return &EditImage{Success: true, ImageURL: imageURL}
}

// Marshal encodes any response body in full, so nothing is written to the
// client until the whole body is ready.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}
