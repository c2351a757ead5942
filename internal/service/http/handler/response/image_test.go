package response

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEditImageMarshal(t *testing.T) {
	data, err := Marshal(NewEditImage("data:image/png;base64,QUJD"))
	require.NoError(t, err)
	require.JSONEq(t, `{"success":true,"imageUrl":"data:image/png;base64,QUJD"}`, string(data))

	data, err = Marshal(map[string]string{"error": "Failed to generate image"})
	require.NoError(t, err)
	require.JSONEq(t, `{"error":"Failed to generate image"}`, string(data))
}
