package repo

import (
	"github.com/mrzero/lootstock/internal/pg"
	bossrepo "github.com/mrzero/lootstock/internal/repo/boss-repo"
	droprepo "github.com/mrzero/lootstock/internal/repo/drop-repo"
	itemrepo "github.com/mrzero/lootstock/internal/repo/item-repo"
	playerrepo "github.com/mrzero/lootstock/internal/repo/player-repo"
	salerepo "github.com/mrzero/lootstock/internal/repo/sale-repo"
	sharerepo "github.com/mrzero/lootstock/internal/repo/share-repo"
)

// Repositories keeps the concrete types: each repo serves several services
// through different interface subsets, so the narrowing happens at the
// service constructors.
type Repositories struct {
	PlayerRepo *playerrepo.Repository
	ItemRepo   *itemrepo.Repository
	BossRepo   *bossrepo.Repository
	DropRepo   *droprepo.Repository
	SaleRepo   *salerepo.Repository
	ShareRepo  *sharerepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		PlayerRepo: playerrepo.New(conn),
		ItemRepo:   itemrepo.New(conn),
		BossRepo:   bossrepo.New(conn),
		DropRepo:   droprepo.New(conn, txManager),
		SaleRepo:   salerepo.New(conn, txManager),
		ShareRepo:  sharerepo.New(conn, txManager),
	}
}
