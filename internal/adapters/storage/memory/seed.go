package memory

import (
	"context"
	"time"

	"doggo-marketplace/internal/domain/addresses"
	"doggo-marketplace/internal/domain/dogs"
	"doggo-marketplace/internal/domain/notifications"
	"doggo-marketplace/internal/domain/orders"
	"doggo-marketplace/internal/domain/places"
	"doggo-marketplace/internal/domain/requests"
	"doggo-marketplace/internal/domain/users"
	"doggo-marketplace/internal/domain/walkers"
)

// IDs fijos del seed, para poder usar X-Debug-User-ID en dev y en los tests
// e2e sin mirar la base.
const (
	SeedUserAnna  = "u-anna"
	SeedUserPiotr = "u-piotr"
	SeedUserMarek = "u-marek"
	SeedUserJulia = "u-julia"

	SeedDogBurek = "d-burek"
	SeedDogLuna  = "d-luna"
	SeedDogMax   = "d-max"
	SeedDogBella = "d-bella"

	SeedAddrHome   = "a-dom"
	SeedAddrOffice = "a-biuro"
	SeedAddrPiotr  = "a-piotr-dom"

	SeedWalkerMarek = "w-marek"
	SeedWalkerJulia = "w-julia"

	SeedOrderInProgress = "o-5001"

	SeedRequestMax   = "rq-max"
	SeedRequestBella = "rq-bella"
)

// seed carga el dataset demo: un mercado chico en Rzeszów con una dueña,
// dos paseadores, un paseo en curso y un tablón con avisos abiertos.
func seed(r repos) {
	ctx := context.Background()
	now := time.Now()

	anna := users.User{
		ID:            SeedUserAnna,
		FirstName:     "Anna",
		LastName:      "Kowalska",
		Email:         "anna.kowalska@example.com",
		Roles:         []users.Role{users.RoleRegistered, users.RoleDogOwner},
		WalletBalance: 240.50,
		CreatedAt:     now.Add(-90 * 24 * time.Hour),
		UpdatedAt:     now,
	}
	piotr := users.User{
		ID:            SeedUserPiotr,
		FirstName:     "Piotr",
		LastName:      "Zieliński",
		Email:         "piotr.zielinski@example.com",
		Roles:         []users.Role{users.RoleRegistered, users.RoleDogOwner},
		WalletBalance: 85,
		CreatedAt:     now.Add(-60 * 24 * time.Hour),
		UpdatedAt:     now,
	}
	marek := users.User{
		ID:         SeedUserMarek,
		FirstName:  "Marek",
		LastName:   "Nowak",
		Email:      "marek.nowak@example.com",
		Roles:      []users.Role{users.RoleRegistered, users.RoleDogWalker},
		WalkerTier: users.TierAnimator,
		CreatedAt:  now.Add(-200 * 24 * time.Hour),
		UpdatedAt:  now,
	}
	julia := users.User{
		ID:         SeedUserJulia,
		FirstName:  "Julia",
		LastName:   "Wiśniewska",
		Email:      "julia.wisniewska@example.com",
		Roles:      []users.Role{users.RoleRegistered, users.RoleDogWalker},
		WalkerTier: users.TierVet,
		CreatedAt:  now.Add(-300 * 24 * time.Hour),
		UpdatedAt:  now,
	}
	for _, u := range []users.User{anna, piotr, marek, julia} {
		r.users.put(u)
	}

	burek := dogs.Dog{
		ID:          SeedDogBurek,
		OwnerUserID: anna.ID,
		Name:        "Burek",
		Breed:       "Owczarek niemiecki",
		Age:         3,
		Image:       "https://images.doggo.example/dogs/burek.jpg",
		Notes:       "Boi się burzy, lepiej unikać otwartych przestrzeni.",
		CreatedAt:   now.Add(-80 * 24 * time.Hour),
		UpdatedAt:   now,
	}
	luna := dogs.Dog{
		ID:          SeedDogLuna,
		OwnerUserID: anna.ID,
		Name:        "Luna",
		Breed:       "Labrador",
		Age:         2,
		Image:       "https://images.doggo.example/dogs/luna.jpg",
		CreatedAt:   now.Add(-70 * 24 * time.Hour),
		UpdatedAt:   now,
	}
	maxDog := dogs.Dog{
		ID:          SeedDogMax,
		OwnerUserID: piotr.ID,
		Name:        "Max",
		Breed:       "Beagle",
		Age:         5,
		Image:       "https://images.doggo.example/dogs/max.jpg",
		CreatedAt:   now.Add(-50 * 24 * time.Hour),
		UpdatedAt:   now,
	}
	bella := dogs.Dog{
		ID:          SeedDogBella,
		OwnerUserID: piotr.ID,
		Name:        "Bella",
		Breed:       "Golden retriever",
		Age:         1,
		Image:       "https://images.doggo.example/dogs/bella.jpg",
		CreatedAt:   now.Add(-40 * 24 * time.Hour),
		UpdatedAt:   now,
	}
	for _, d := range []dogs.Dog{burek, luna, maxDog, bella} {
		_ = r.dogs.Create(ctx, d)
	}

	home := addresses.Address{
		ID:          SeedAddrHome,
		OwnerUserID: anna.ID,
		Label:       "Dom",
		Street:      "ul. Słoneczna 15",
		City:        "Rzeszów",
		PostalCode:  "35-001",
		IsPrimary:   true,
		Notes:       "Kod do bramy: 2580",
		CreatedAt:   now.Add(-80 * 24 * time.Hour),
		UpdatedAt:   now,
	}
	office := addresses.Address{
		ID:          SeedAddrOffice,
		OwnerUserID: anna.ID,
		Label:       "Biuro",
		Street:      "al. Piłsudskiego 32",
		City:        "Rzeszów",
		PostalCode:  "35-010",
		CreatedAt:   now.Add(-30 * 24 * time.Hour),
		UpdatedAt:   now,
	}
	piotrHome := addresses.Address{
		ID:          SeedAddrPiotr,
		OwnerUserID: piotr.ID,
		Label:       "Dom",
		Street:      "ul. Krakowska 8",
		City:        "Rzeszów",
		PostalCode:  "35-111",
		IsPrimary:   true,
		CreatedAt:   now.Add(-50 * 24 * time.Hour),
		UpdatedAt:   now,
	}
	for _, a := range []addresses.Address{home, office, piotrHome} {
		_ = r.addresses.Create(ctx, a)
	}

	marekProfile := walkers.Profile{
		ID:         SeedWalkerMarek,
		UserID:     marek.ID,
		User:       marek,
		Bio:        "Biegam z psami codziennie rano, najlepiej nad Wisłokiem.",
		Experience: "5 lat doświadczenia, własne dwa psy.",
		Rating:     4.9, ReviewsCount: 132,
		IsVerified: true,
		AvailableServices: []walkers.ServiceType{
			walkers.ServiceWalk, walkers.ServiceFeeding,
			walkers.ServicePlay, walkers.ServiceStay,
		},
		Tier:       users.TierAnimator,
		HourlyRate: 50,
	}
	juliaProfile := walkers.Profile{
		ID:         SeedWalkerJulia,
		UserID:     julia.ID,
		User:       julia,
		Bio:        "Technik weterynarii, opiekuję się też psami po zabiegach.",
		Experience: "Klinika Cztery Łapy, 7 lat.",
		Rating:     4.8, ReviewsCount: 98,
		IsVerified: true,
		AvailableServices: []walkers.ServiceType{
			walkers.ServiceWalk, walkers.ServiceStay,
			walkers.ServiceCarry, walkers.ServiceVetCare,
		},
		Tier:       users.TierVet,
		HourlyRate: 65,
	}
	r.walkers.put(marekProfile)
	r.walkers.put(juliaProfile)

	// Paseo en curso: es el que adopta la pantalla live al entrar.
	_ = r.orders.Create(ctx, orders.Order{
		ID:              SeedOrderInProgress,
		Dog:             burek,
		Walker:          marekProfile,
		OwnerUserID:     anna.ID,
		Date:            now.Format("2006-01-02"),
		StartTime:       "10:00",
		DurationMinutes: 60,
		ServiceType:     walkers.ServiceWalk,
		Status:          orders.StatusInProgress,
		TotalCost:       50,
		ElapsedSeconds:  420,
		Activities: []orders.WalkActivity{
			{ID: "act-5001-1", Kind: orders.ActivityStart, Timestamp: now.Add(-7 * time.Minute), Label: "Start spaceru"},
			{ID: "act-5001-2", Kind: orders.ActivitySniff, Timestamp: now.Add(-5 * time.Minute), Label: "Burek wącha trawę"},
		},
		CreatedAt: now.Add(-2 * time.Hour),
		UpdatedAt: now,
	})

	// Tablón: dos avisos abiertos de Piotr.
	_ = r.requests.Create(ctx, requests.Request{
		ID:            SeedRequestMax,
		Dog:           maxDog,
		OwnerUserID:   piotr.ID,
		Date:          "Dzisiaj",
		TimeSlot:      "16:00 - 17:00",
		ServiceTypes:  []walkers.ServiceType{walkers.ServiceWalk},
		Price:         45,
		AddressID:     piotrHome.ID,
		LocationLabel: piotrHome.Label,
		Status:        requests.StatusActive,
		CreatedAt:     now.Add(-3 * time.Hour),
		UpdatedAt:     now.Add(-3 * time.Hour),
	})
	_ = r.requests.Create(ctx, requests.Request{
		ID:            SeedRequestBella,
		Dog:           bella,
		OwnerUserID:   piotr.ID,
		Date:          "25 Maj",
		TimeSlot:      "10:00 - 12:00",
		ServiceTypes:  []walkers.ServiceType{walkers.ServiceWalk, walkers.ServicePlay},
		Price:         90,
		AddressID:     piotrHome.ID,
		LocationLabel: piotrHome.Label,
		Status:        requests.StatusActive,
		CreatedAt:     now.Add(-26 * time.Hour),
		UpdatedAt:     now.Add(-26 * time.Hour),
	})

	_ = r.notifications.Create(ctx, notifications.Notification{
		ID:             "n-1",
		UserID:         anna.ID,
		Kind:           notifications.KindDogActivity,
		Title:          "Aktywność psa",
		Description:    "Burek zrobił kupę. Wszystko posprzątane!",
		RelatedOrderID: SeedOrderInProgress,
		ActivityKind:   notifications.ActivityPoop,
		CreatedAt:      now.Add(-4 * time.Minute),
	})

	seedPlaces(r)
}

func seedPlaces(r repos) {
	for _, p := range []places.Place{
		{
			ID: "pl-wet-cztery-lapy", Name: "Klinika Weterynaryjna Cztery Łapy",
			Type: places.TypeVeterinary, Address: "ul. Lwowska 20", City: "Rzeszów",
			Phone: "+48 17 852 10 20", Rating: 4.7, Lat: 50.0389, Lng: 22.0142,
		},
		{
			ID: "pl-shop-reksio", Name: "Sklep Zoologiczny Reksio",
			Type: places.TypePetShop, Address: "ul. 3 Maja 11", City: "Rzeszów",
			Phone: "+48 17 853 44 55", Rating: 4.5, Lat: 50.0375, Lng: 22.0047,
		},
		{
			ID: "pl-shelter-kundelek", Name: "Schronisko Kundelek",
			Type: places.TypeAnimalShelter, Address: "ul. Ciepłownicza 3", City: "Rzeszów",
			Phone: "+48 17 862 42 85", Rating: 4.9, Lat: 50.0126, Lng: 22.0397,
		},
		{
			ID: "pl-wet-warszawa", Name: "Przychodnia Weterynaryjna Pod Psem",
			Type: places.TypeVeterinary, Address: "ul. Marszałkowska 140", City: "Warszawa",
			Phone: "+48 22 620 30 40", Rating: 4.6, Lat: 52.2330, Lng: 21.0099,
		},
	} {
		r.places.put(p)
	}
}
