package domain

// DefaultOrderBookers devolve o diretório inicial de order bookers por cidade e TSM
func DefaultOrderBookers() []*OrderBooker {
	route1 := func() []string { return []string{"Route 1"} }

	return []*OrderBooker{
		// Peshawar
		{Name: "Muhammad Bilal", Contact: "P-01", Town: "Peshawar", Distributor: "Peshawar Dist", TSM: "Muhammad Shoaib", TotalShops: 45, Routes: route1()},
		{Name: "Khizar Hayat", Contact: "P-02", Town: "Peshawar", Distributor: "Peshawar Dist", TSM: "Muhammad Shoaib", TotalShops: 40, Routes: route1()},
		{Name: "Adil Khan", Contact: "P-03", Town: "Peshawar", Distributor: "Peshawar Dist", TSM: "Muhammad Shoaib", TotalShops: 50, Routes: route1()},
		{Name: "Baidar Khan", Contact: "P-04", Town: "Peshawar", Distributor: "Peshawar Dist", TSM: "Muhammad Shoaib", TotalShops: 42, Routes: route1()},
		{Name: "Muhammad Usman", Contact: "P-05", Town: "Peshawar", Distributor: "Peshawar Dist", TSM: "Muhammad Shoaib", TotalShops: 48, Routes: route1()},
		{Name: "Ghulam Rasool", Contact: "P-06", Town: "Peshawar", Distributor: "Peshawar Dist", TSM: "Muhammad Shoaib", TotalShops: 44, Routes: route1()},
		{Name: "Khalid Awan", Contact: "P-07", Town: "Peshawar", Distributor: "Peshawar Dist", TSM: "Muhammad Shoaib", TotalShops: 46, Routes: route1()},

		// Haripur e Taxila
		{Name: "Shahid", Contact: "H-01", Town: "Haripur", Distributor: "Haripur Dist", TSM: "Muhammad Yousaf", TotalShops: 35, Routes: route1()},
		{Name: "Shahrukh", Contact: "H-02", Town: "Haripur", Distributor: "Haripur Dist", TSM: "Muhammad Yousaf", TotalShops: 38, Routes: route1()},
		{Name: "Bilal", Contact: "T-01", Town: "Taxila", Distributor: "Taxila Dist", TSM: "Muhammad Yousaf", TotalShops: 40, Routes: route1()},
		{Name: "Muneeb", Contact: "T-02", Town: "Taxila", Distributor: "Taxila Dist", TSM: "Muhammad Yousaf", TotalShops: 42, Routes: route1()},

		// Kohat, Hangu e Attock
		{Name: "Kashif", Contact: "K-01", Town: "Kohat", Distributor: "Kohat Dist", TSM: "Noman Paracha", TotalShops: 55, Routes: route1()},
		{Name: "Bilal", Contact: "HG-01", Town: "Hangu", Distributor: "Hangu Dist", TSM: "Noman Paracha", TotalShops: 50, Routes: route1()},
		{Name: "Usama", Contact: "A-01", Town: "Attock", Distributor: "Attock Dist", TSM: "Noman Paracha", TotalShops: 45, Routes: route1()},

		{Name: "Babar", Contact: "C-01", Town: "Charsadda", Distributor: "Charsadda Dist", TSM: "Waheed Jamal", TotalShops: 48, Routes: route1()},
		{Name: "Muhammad Amir", Contact: "M-01", Town: "Mardan", Distributor: "Mardan Dist", TSM: "Muhammad Zeeshan", TotalShops: 52, Routes: route1()},

		// DI Khan e Bannu
		{Name: "Zakaullah", Contact: "DI-01", Town: "DI Khan", Distributor: "DI Khan Dist", TSM: "Ikramullah", TotalShops: 48, Routes: route1()},
		{Name: "Muntazir", Contact: "DI-02", Town: "DI Khan", Distributor: "DI Khan Dist", TSM: "Ikramullah", TotalShops: 45, Routes: route1()},
		{Name: "OB Bannu", Contact: "BAN-01", Town: "Bannu", Distributor: "Bannu Dist", TSM: "Ikramullah", TotalShops: 40, Routes: route1()},

		{Name: "OB Muzaffarabad", Contact: "MUZ-01", Town: "Muzaffarabad", Distributor: "Muz Dist", TSM: "Qaisar Yousaf", TotalShops: 40, Routes: route1()},
		{Name: "OB Mansehra", Contact: "MAN-01", Town: "Mansehra", Distributor: "Man Dist", TSM: "Qaisar Yousaf", TotalShops: 40, Routes: route1()},
	}
}

// DefaultSettings são as configurações gravadas na criação do banco
func DefaultSettings() []*AppSetting {
	return []*AppSetting{
		{Key: SettingTotalWorkingDays, Value: "25"},
	}
}

const SettingTotalWorkingDays = "total_working_days"
