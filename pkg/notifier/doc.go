package notifier

//go:generate mockgen -destination=../mocks/mock_notifier.go -package=mocks github.com/arch-ops/omega-launcher/pkg/notifier Notifier
