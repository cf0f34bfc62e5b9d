package services

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"carecompanion/config"
	"carecompanion/models"
	"carecompanion/utils"
)

// RegisterUser creates an account. Role defaults to family, the way the
// app registered accounts that never picked one.
func RegisterUser(email, password, role string) error {
	if role == "" {
		role = models.RoleFamily
	}
	if role != models.RoleFamily && role != models.RolePatient {
		return errors.New("role must be family or patient")
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	base := strings.ToLower(strings.SplitN(email, "@", 2)[0])
	userID := fmt.Sprintf("%s%d", base, rand.Intn(100000))

	user := models.User{
		UserID:   userID,
		Email:    email,
		Password: hashedPassword,
		Role:     role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return err
	}

	go func() {
		if err := utils.SendWelcomeEmail(email, role); err != nil {
			log.Printf("welcome email failed: %v", err)
		}
	}()
	return nil
}

// AuthenticateUser checks the credentials and hands back the user plus a
// signed token carrying the role claim.
func AuthenticateUser(email, password string) (*models.User, string, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	result := config.DB.First(&user, "email = ?", email)
	if result.Error != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}
