package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"userbase/internal/auth"
	"userbase/internal/store"
	"userbase/internal/validation"
)

// Every handler produces exactly one response write per request; logical
// failures are reported through the body-level status flag.

func CreateUser(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "USERS")

		var req validation.CreateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := svc.Register(ctx, auth.RegisterParams{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    req.Gender,
			PhoneNo:   req.PhoneNo,
			Email:     req.Email,
			Password:  req.Password,
			DOB:       req.DOB,
			Address:   req.Address,
		})
		if err != nil {
			log.Println("[USERS] [ERROR] create user failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "Failed to create user"})
			return
		}

		log.Println("[USERS] [INFO] user created:", user.Email)
		c.JSON(http.StatusCreated, gin.H{
			"status": true,
			"data":   user,
		})
	}
}

func Login(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "AUTH")

		var req validation.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		pair, user, err := svc.Login(ctx, req.Email, req.Password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				log.Println("[AUTH] [ERROR] login invalid credentials")
				c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "Invalid Email/Password"})
				return
			}
			log.Println("[AUTH] [ERROR] login failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "db error"})
			return
		}

		log.Println("[AUTH] [INFO] user login succeeded:", user.Email)
		c.JSON(http.StatusOK, gin.H{
			"status":       true,
			"message":      "Login success",
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
			"expiresIn":    pair.ExpiresIn,
			"user":         user,
		})
	}
}

func Logout(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "AUTH")

		var req validation.SessionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := svc.Logout(ctx, *req.ID, req.Token); err != nil {
			switch {
			case errors.Is(err, auth.ErrUserNotFound):
				c.JSON(http.StatusOK, gin.H{"status": false, "message": "User not found"})
			case errors.Is(err, auth.ErrUpdateFailed):
				c.JSON(http.StatusOK, gin.H{"status": false, "message": "Failed to update"})
			default:
				log.Println("[AUTH] [ERROR] logout failed:", err)
				c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "db error"})
			}
			return
		}

		log.Println("[AUTH] [INFO] user logout succeeded:", *req.ID)
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "User logout successfully"})
	}
}

func RefreshToken(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "AUTH")

		var req validation.SessionRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		pair, err := svc.Refresh(ctx, *req.ID, req.Token)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				log.Println("[AUTH] [ERROR] refresh token mismatch for user:", *req.ID)
				c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "Invalid Token"})
				return
			}
			log.Println("[AUTH] [ERROR] refresh failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "db error"})
			return
		}

		log.Println("[AUTH] [INFO] tokens rotated for user:", *req.ID)
		c.JSON(http.StatusOK, gin.H{
			"status":       true,
			"message":      "Token generate successfully",
			"accessToken":  pair.AccessToken,
			"refreshToken": pair.RefreshToken,
			"expiresIn":    pair.ExpiresIn,
		})
	}
}

func GetUsers(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "USERS")

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		list, err := users.FindAll(ctx)
		if err != nil {
			log.Println("[USERS] [ERROR] list users failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "db error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": true, "data": list})
	}
}

func UpdateUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "USERS")

		var req validation.UpdateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		update := store.ProfileUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Gender:    req.Gender,
			PhoneNo:   req.PhoneNo,
			Email:     req.Email,
			DOB:       req.DOB,
			Address:   req.Address,
		}

		matched, err := users.UpdateProfile(ctx, *req.ID, update)
		if err != nil {
			log.Println("[USERS] [ERROR] update user failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "db error"})
			return
		}
		if !matched {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "Failed to update"})
			return
		}

		log.Println("[USERS] [INFO] user updated:", *req.ID)
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "User updated successfully"})
	}
}

func DeleteUser(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "USERS")

		var req validation.DeleteUserRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.ID == nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": false, "message": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		deleted, err := users.Delete(ctx, *req.ID)
		if err != nil {
			log.Println("[USERS] [ERROR] delete user failed:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": false, "message": "db error"})
			return
		}
		if !deleted {
			c.JSON(http.StatusOK, gin.H{"status": false, "message": "User not found"})
			return
		}

		log.Println("[USERS] [INFO] user deleted:", *req.ID)
		c.JSON(http.StatusOK, gin.H{"status": true, "message": "user data deleted successfully"})
	}
}

func GetMe(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer handlePanic(c, "USERS")

		userIDValue, ok := c.Get("userId")
		if !ok {
			log.Println("[USERS] [ERROR] userId missing in context")
			c.JSON(http.StatusUnauthorized, gin.H{"status": false, "message": "unauthorized"})
			return
		}
		userID := userIDValue.(int64)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		user, err := users.FindByID(ctx, userID)
		if err != nil {
			log.Println("[USERS] [ERROR] get me failed:", err)
			c.JSON(http.StatusNotFound, gin.H{"status": false, "message": "User not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": true, "data": user})
	}
}
