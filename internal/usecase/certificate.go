package usecase

import (
	"context"

	"github.com/Cedric-Kasera/api.stickrhiveacademy/internal/domain"
)

// Certificates are created by the progress usecase when a course reaches
// 100%; this usecase only exposes them.

type certificateUsecase struct {
	certRepo domain.CertificateRepository
}

func NewCertificateUsecase(cr domain.CertificateRepository) domain.CertificateUsecase {
	return &certificateUsecase{certRepo: cr}
}

func (uc *certificateUsecase) GetUserCertificates(ctx context.Context, userID uint) ([]domain.Certificate, error) {
	return uc.certRepo.GetByUserID(ctx, userID)
}
