package util

import "errors"

var (
	ErrNotFound           = errors.New("kayıt bulunamadı")
	ErrInvalidInput       = errors.New("geçersiz girdi")
	ErrConflict           = errors.New("kayıt çakışması")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrWordNotFound       = errors.New("kelime bulunamadı")
	ErrQuizNotFound       = errors.New("quiz bulunamadı")
	ErrSessionNotFound    = errors.New("oturum bulunamadı")
	ErrConvNotFound       = errors.New("sohbet bulunamadı")
	ErrEmailRegistered    = errors.New("bu e-posta adresi zaten kayıtlı")
	ErrFirebaseRegistered = errors.New("bu firebase hesabı zaten kayıtlı")
	ErrWordExists         = errors.New("bu kelime zaten mevcut")
	ErrInvalidCredentials = errors.New("şifre veya e-posta yanlış")
	ErrPermissionDenied   = errors.New("bu işlem için yetkiniz yok")
)
