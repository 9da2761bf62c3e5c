package locations

var provinces = []Province{
	{ID: "p1", Name: "DKI Jakarta"},
	{ID: "p2", Name: "Jawa Barat"},
	{ID: "p3", Name: "Jawa Tengah"},
	{ID: "p4", Name: "Jawa Timur"},
	{ID: "p5", Name: "Banten"},
	{ID: "p6", Name: "Bali"},
	{ID: "p7", Name: "DI Yogyakarta"},
}

var cities = []City{
	{ID: "c1", Name: "Jakarta Pusat", ProvinceID: "p1"},
	{ID: "c2", Name: "Jakarta Selatan", ProvinceID: "p1"},
	{ID: "c3", Name: "Jakarta Utara", ProvinceID: "p1"},
	{ID: "c4", Name: "Jakarta Barat", ProvinceID: "p1"},
	{ID: "c5", Name: "Jakarta Timur", ProvinceID: "p1"},
	{ID: "c6", Name: "Bandung", ProvinceID: "p2"},
	{ID: "c7", Name: "Bogor", ProvinceID: "p2"},
	{ID: "c8", Name: "Bekasi", ProvinceID: "p2"},
	{ID: "c9", Name: "Depok", ProvinceID: "p2"},
	{ID: "c10", Name: "Semarang", ProvinceID: "p3"},
	{ID: "c11", Name: "Surabaya", ProvinceID: "p4"},
	{ID: "c12", Name: "Tangerang", ProvinceID: "p5"},
	{ID: "c13", Name: "Tangerang Selatan", ProvinceID: "p5"},
	{ID: "c14", Name: "Denpasar", ProvinceID: "p6"},
	{ID: "c15", Name: "Badung", ProvinceID: "p6"},
	{ID: "c16", Name: "Yogyakarta", ProvinceID: "p7"},
	{ID: "c17", Name: "Malang", ProvinceID: "p4"},
}

var districts = []District{
	{ID: "d1", Name: "Menteng", CityID: "c1"},
	{ID: "d2", Name: "Tanah Abang", CityID: "c1"},
	{ID: "d3", Name: "Kebayoran Baru", CityID: "c2"},
	{ID: "d4", Name: "Cilandak", CityID: "c2"},
	{ID: "d5", Name: "Kelapa Gading", CityID: "c3"},
	{ID: "d6", Name: "Penjaringan", CityID: "c3"},
	{ID: "d7", Name: "Ciputat", CityID: "c13"},
	{ID: "d8", Name: "Serpong", CityID: "c13"},
	{ID: "d9", Name: "Pondok Aren", CityID: "c13"},
	{ID: "d10", Name: "Coblong", CityID: "c6"},
	{ID: "d11", Name: "Bogor Tengah", CityID: "c7"},
	{ID: "d12", Name: "Kuta", CityID: "c15"},
	{ID: "d13", Name: "Kuta Utara", CityID: "c15"},
	{ID: "d14", Name: "Denpasar Selatan", CityID: "c14"},
	{ID: "d15", Name: "Karawaci", CityID: "c12"},
	{ID: "d16", Name: "Gubeng", CityID: "c11"},
	{ID: "d17", Name: "Tegalsari", CityID: "c11"},
	{ID: "d18", Name: "Pesanggrahan", CityID: "c2"},
}
