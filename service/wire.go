package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(ImageService), "*"),
	wire.Bind(new(IImageService), new(*ImageService)),

	wire.Struct(new(PostService), "*"),
	wire.Bind(new(IPostService), new(*PostService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(CommentsService), "*"),
	wire.Bind(new(ICommentsService), new(*CommentsService)),

	NewNeisService,
	wire.Bind(new(INeisService), new(*NeisService)),
)
