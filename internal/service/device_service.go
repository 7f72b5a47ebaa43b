package service

import "pokehub/backend/internal/models"

// DeviceService maintains the per-user push token registry.
type DeviceService struct {
	devices DeviceTokenStore
}

func NewDeviceService(devices DeviceTokenStore) *DeviceService {
	return &DeviceService{devices: devices}
}

// RegisterToken records a device token for the user. Registering the
// same token twice is a no-op.
func (s *DeviceService) RegisterToken(userID uint, token string) error {
	exists, err := s.devices.Exists(userID, token)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.devices.Create(&models.DeviceToken{
		UserID: userID,
		Token:  token,
	})
}
