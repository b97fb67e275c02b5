package controller

import (
	"talkify_backend/internal/service"
	"talkify_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewAuthController(authService *service.AuthService, userService *service.UserService) *AuthController {
	return &AuthController{
		AuthService: authService,
		UserService: userService,
	}
}

// Register godoc
// @Summary Yeni kullanıcı kaydı
// @Description E-posta ve şifre ile kayıt; token ve kullanıcı döner
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Kayıt bilgileri"
// @Success 201 {object} util.Response{data=service.AuthResult}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "E-posta zaten kayıtlı"
// @Router /api/auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Register(&req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.Created(ctx, "Kayıt başarılı.", result)
}

// Login godoc
// @Summary Giriş
// @Tags auth
// @Accept json
// @Produce json
// @Param body body service.LoginRequest true "Giriş bilgileri"
// @Success 200 {object} util.Response{data=service.AuthResult}
// @Failure 401 {object} util.Response "Kimlik bilgileri hatalı"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AuthService.Login(&req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Giriş başarılı.", result)
}

// Me godoc
// @Summary Mevcut kullanıcı profili
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// UpdateProfile godoc
// @Summary Profil güncelle
// @Description Kullanıcı adı, seviye, günlük hedef ve avatar URL güncellenebilir
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.UpdateProfileRequest true "Güncellenecek alanlar"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/auth/profile [put]
func (c *AuthController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.SuccessMessage(ctx, "Profil güncellendi.", user)
}

// UploadAvatar godoc
// @Summary Avatar yükle
// @Tags auth
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param avatar formData file true "Avatar dosyası (png/jpg/jpeg/webp)"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/auth/avatar [post]
func (c *AuthController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "Avatar dosyası gerekli.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), claims.UserID, fileHeader.Filename, file, fileHeader.Size, contentType)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Avatar güncellendi.", gin.H{"avatar_url": url})
}
