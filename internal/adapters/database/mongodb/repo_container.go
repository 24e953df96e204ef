package mongodb

import (
	portsrepo "github.com/SscSPs/news_digest_app/internal/core/ports/repositories"
)

func NewRepositoryProvider(source CollectionSource) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:              newMongoUserRepository(source),
		AccountRepo:           newMongoAccountRepository(source),
		SessionRepo:           newMongoSessionRepository(source),
		VerificationTokenRepo: newMongoVerificationTokenRepository(source),
		BookmarkRepo:          newMongoBookmarkRepository(source),
	}
}
