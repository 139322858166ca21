//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFaceDetector_WithoutGoCV(t *testing.T) {
	d, err := NewFaceDetector("haarcascade.xml", 48)
	require.ErrorIs(t, err, ErrNotEnabled)
	require.Nil(t, d)

	var stub FaceDetector
	_, err = stub.Annotate(context.Background(), []byte("jpeg"), nil)
	require.ErrorIs(t, err, ErrNotEnabled)
	require.NoError(t, stub.Close())
}
