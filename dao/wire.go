package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewStudentDAO,
	NewPostDAO,
	NewCommentDAO,
	NewSubCommentDAO,
	NewPostLikeDAO,
	NewPostImageDAO,
)
