package game

const (
	UpgradeWoodenStand          UpgradeID = "wooden_stand"
	UpgradeCardboardSign        UpgradeID = "cardboard_sign"
	UpgradeStyrofoamBox         UpgradeID = "styrofoam_box"
	UpgradeExtraCrate           UpgradeID = "extra_crate"
	UpgradeRecipeNotebook       UpgradeID = "recipe_notebook"
	UpgradePoncho               UpgradeID = "poncho"
	UpgradeFlyers               UpgradeID = "flyers"
	UpgradePaperNapkins         UpgradeID = "paper_napkins"
	UpgradePriceComparison      UpgradeID = "price_comparison"
	UpgradeSharpKnife           UpgradeID = "sharp_knife"
	UpgradeTipJar               UpgradeID = "tip_jar"
	UpgradeWeatherRadio         UpgradeID = "weather_radio"
	UpgradeCalculator           UpgradeID = "calculator"
	UpgradeTablecloth           UpgradeID = "tablecloth"
	UpgradeMarketCart           UpgradeID = "market_cart"
	UpgradeChalkboardSign       UpgradeID = "chalkboard_sign"
	UpgradeBasicCooler          UpgradeID = "basic_cooler"
	UpgradeStorageShelf         UpgradeID = "storage_shelf"
	UpgradeQualityLemons        UpgradeID = "quality_lemons"
	UpgradeUmbrella             UpgradeID = "umbrella"
	UpgradeBusinessCards        UpgradeID = "business_cards"
	UpgradeCupSleeves           UpgradeID = "cup_sleeves"
	UpgradeBulkBuying           UpgradeID = "bulk_buying"
	UpgradePrepStation          UpgradeID = "prep_station"
	UpgradeHelpWantedSign       UpgradeID = "help_wanted_sign"
	UpgradePriceBoard           UpgradeID = "price_board"
	UpgradeFlowerPot            UpgradeID = "flower_pot"
	UpgradeFreeSamples          UpgradeID = "free_samples"
	UpgradeCuteCups             UpgradeID = "cute_cups"
	UpgradeGardenBooth          UpgradeID = "garden_booth"
	UpgradeWoodenSign           UpgradeID = "wooden_sign"
	UpgradeInsulatedCooler      UpgradeID = "insulated_cooler"
	UpgradeStorageRack          UpgradeID = "storage_rack"
	UpgradeOrganicSugar         UpgradeID = "organic_sugar"
	UpgradePopUpCanopy          UpgradeID = "pop_up_canopy"
	UpgradeLocalPaperAd         UpgradeID = "local_paper_ad"
	UpgradeBenchSeating         UpgradeID = "bench_seating"
	UpgradeFarmerDeal           UpgradeID = "farmer_deal"
	UpgradeSpeedPitcher         UpgradeID = "speed_pitcher"
	UpgradePartTimeHelper       UpgradeID = "part_time_helper"
	UpgradeWeatherApp           UpgradeID = "weather_app"
	UpgradeStringLights         UpgradeID = "string_lights"
	UpgradeLemonGarden          UpgradeID = "lemon_garden"
	UpgradeSugarDispenser       UpgradeID = "sugar_dispenser"
	UpgradeLoyaltyPunchCard     UpgradeID = "loyalty_punch_card"
	UpgradeCornerShop           UpgradeID = "corner_shop"
	UpgradeNeonSign             UpgradeID = "neon_sign"
	UpgradeIceMachine           UpgradeID = "ice_machine"
	UpgradeMiniWarehouse        UpgradeID = "mini_warehouse"
	UpgradePremiumIce           UpgradeID = "premium_ice"
	UpgradeWeatherproofTent     UpgradeID = "weatherproof_tent"
	UpgradeSocialMedia          UpgradeID = "social_media"
	UpgradeMusicSpeaker         UpgradeID = "music_speaker"
	UpgradeWholesaleAccount     UpgradeID = "wholesale_account"
	UpgradeDoublePitcher        UpgradeID = "double_pitcher"
	UpgradeFullTimeEmployee     UpgradeID = "full_time_employee"
	UpgradePosSystem            UpgradeID = "pos_system"
	UpgradeThemedDecor          UpgradeID = "themed_decor"
	UpgradeInsurancePolicy      UpgradeID = "insurance_policy"
	UpgradeHappyHour            UpgradeID = "happy_hour"
	UpgradeSecretMenu           UpgradeID = "secret_menu"
	UpgradeDowntownStore        UpgradeID = "downtown_store"
	UpgradeLedDisplay           UpgradeID = "led_display"
	UpgradeIndustrialFreezer    UpgradeID = "industrial_freezer"
	UpgradeFullWarehouse        UpgradeID = "full_warehouse"
	UpgradeSecretRecipe         UpgradeID = "secret_recipe"
	UpgradeClimateControl       UpgradeID = "climate_control"
	UpgradeInfluencerDeal       UpgradeID = "influencer_deal"
	UpgradeVipArea              UpgradeID = "vip_area"
	UpgradeBulkSupplier         UpgradeID = "bulk_supplier"
	UpgradeAutomatedJuicer      UpgradeID = "automated_juicer"
	UpgradeShiftManager         UpgradeID = "shift_manager"
	UpgradeAnalyticsDashboard   UpgradeID = "analytics_dashboard"
	UpgradeBrandedCups          UpgradeID = "branded_cups"
	UpgradeCateringService      UpgradeID = "catering_service"
	UpgradeLoyaltyApp           UpgradeID = "loyalty_app"
	UpgradeFranchiseLicense     UpgradeID = "franchise_license"
	UpgradeFoodTruckFleet       UpgradeID = "food_truck_fleet"
	UpgradeDigitalBillboard     UpgradeID = "digital_billboard"
	UpgradeColdStorage          UpgradeID = "cold_storage"
	UpgradeDistributionHub      UpgradeID = "distribution_hub"
	UpgradeMasterRecipe         UpgradeID = "master_recipe"
	UpgradeIndoorSeating        UpgradeID = "indoor_seating"
	UpgradeTvCommercial         UpgradeID = "tv_commercial"
	UpgradePremiumService       UpgradeID = "premium_service"
	UpgradeImportDeal           UpgradeID = "import_deal"
	UpgradeDriveThrough         UpgradeID = "drive_through"
	UpgradeFullCrew             UpgradeID = "full_crew"
	UpgradeAiForecasting        UpgradeID = "ai_forecasting"
	UpgradeFlagshipDesign       UpgradeID = "flagship_design"
	UpgradeFoodFestivalPass     UpgradeID = "food_festival_pass"
	UpgradeDeliveryService      UpgradeID = "delivery_service"
	UpgradeCelebrityEndorsement UpgradeID = "celebrity_endorsement"
	UpgradeHolographicDisplay   UpgradeID = "holographic_display"
	UpgradeCryogenicChiller     UpgradeID = "cryogenic_chiller"
	UpgradeSupplyNetwork        UpgradeID = "supply_network"
	UpgradeLegendaryFormula     UpgradeID = "legendary_formula"
	UpgradeWeatherDome          UpgradeID = "weather_dome"
	UpgradeNationalBrand        UpgradeID = "national_brand"
	UpgradeFiveStarService      UpgradeID = "five_star_service"
	UpgradeVerticalFarm         UpgradeID = "vertical_farm"
	UpgradeExpressLane          UpgradeID = "express_lane"
	UpgradeCorporateTeam        UpgradeID = "corporate_team"
	UpgradeMarketIntelligence   UpgradeID = "market_intelligence"
	UpgradeIconicBrand          UpgradeID = "iconic_brand"
	UpgradeLemonadeMuseum       UpgradeID = "lemonade_museum"
	UpgradeWorldRecord          UpgradeID = "world_record"
	UpgradeLemonadeEmpire       UpgradeID = "lemonade_empire"
)

var upgradeCatalog = []UpgradeDef{
	// Tier 1: Sidewalk
	{
		ID:          UpgradeWoodenStand,
		Name:        "Wooden Stand",
		Description: "A proper stand! Unlocks Tier 2. Rent: $1/day",
		Cost:        18,
		Tier:        1,
		Category:    CategoryStand,
		Requires:    nil,
		Effects:     EffectBundle{EffectRentPerDay: 1},
	},
	{
		ID:          UpgradeCardboardSign,
		Name:        "Cardboard Sign",
		Description: "+3% customer awareness",
		Cost:        4,
		Tier:        1,
		Category:    CategorySignage,
		Requires:    nil,
		Effects:     EffectBundle{EffectAwareness: 0.03},
	},
	{
		ID:          UpgradeStyrofoamBox,
		Name:        "Styrofoam Box",
		Description: "Ice lasts 1 extra day",
		Cost:        5,
		Tier:        1,
		Category:    CategoryCooling,
		Requires:    nil,
		Effects:     EffectBundle{EffectIceShelfBonus: 1},
	},
	{
		ID:          UpgradeExtraCrate,
		Name:        "Extra Crate",
		Description: "+50 max inventory",
		Cost:        5,
		Tier:        1,
		Category:    CategoryStorage,
		Requires:    nil,
		Effects:     EffectBundle{EffectCapacityBonus: 50},
	},
	{
		ID:          UpgradeRecipeNotebook,
		Name:        "Recipe Notebook",
		Description: "Shows basic recipe hints",
		Cost:        4,
		Tier:        1,
		Category:    CategoryRecipe,
		Requires:    nil,
		Effects:     EffectBundle{EffectShowRecipeHints: 1, EffectQualityBonus: 0.02},
	},
	{
		ID:          UpgradePoncho,
		Name:        "Poncho",
		Description: "Rain penalty -10%",
		Cost:        4,
		Tier:        1,
		Category:    CategoryWeather,
		Requires:    nil,
		Effects:     EffectBundle{EffectRainReduction: 0.1},
	},
	{
		ID:          UpgradeFlyers,
		Name:        "Flyers",
		Description: "+3% awareness",
		Cost:        3,
		Tier:        1,
		Category:    CategoryMarketing,
		Requires:    nil,
		Effects:     EffectBundle{EffectAwareness: 0.03},
	},
	{
		ID:          UpgradePaperNapkins,
		Name:        "Paper Napkins",
		Description: "+3% satisfaction",
		Cost:        3,
		Tier:        1,
		Category:    CategoryExperience,
		Requires:    nil,
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.03},
	},
	{
		ID:          UpgradePriceComparison,
		Name:        "Price Comparison",
		Description: "3% off supplies",
		Cost:        3,
		Tier:        1,
		Category:    CategorySupply,
		Requires:    nil,
		Effects:     EffectBundle{EffectCostReduction: 0.03},
	},
	{
		ID:          UpgradeSharpKnife,
		Name:        "Sharp Knife",
		Description: "+5% max served",
		Cost:        4,
		Tier:        1,
		Category:    CategorySpeed,
		Requires:    nil,
		Effects:     EffectBundle{EffectServedBonus: 0.05},
	},
	{
		ID:          UpgradeTipJar,
		Name:        "Tip Jar",
		Description: "+5% reputation gain",
		Cost:        3,
		Tier:        1,
		Category:    CategoryStaff,
		Requires:    nil,
		Effects:     EffectBundle{EffectReputationGain: 0.05},
	},
	{
		ID:          UpgradeWeatherRadio,
		Name:        "Weather Radio",
		Description: "See tomorrow's weather forecast",
		Cost:        6,
		Tier:        1,
		Category:    CategoryTechnology,
		Requires:    nil,
		Effects:     EffectBundle{EffectShowForecast: 1},
	},
	{
		ID:          UpgradeCalculator,
		Name:        "Calculator",
		Description: "Shows profit per cup",
		Cost:        5,
		Tier:        1,
		Category:    CategoryTechnology,
		Requires:    nil,
		Effects:     EffectBundle{EffectShowProfitPerCup: 1},
	},
	{
		ID:          UpgradeTablecloth,
		Name:        "Tablecloth",
		Description: "+2% satisfaction",
		Cost:        3,
		Tier:        1,
		Category:    CategoryDecor,
		Requires:    nil,
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.02},
	},
	// Tier 2: Wooden Stand
	{
		ID:          UpgradeMarketCart,
		Name:        "Market Cart",
		Description: "Mobile selling! Unlocks Tier 3. Rent: $3/day",
		Cost:        50,
		Tier:        2,
		Category:    CategoryStand,
		Requires:    []UpgradeID{UpgradeWoodenStand},
		Effects:     EffectBundle{EffectRentPerDay: 3},
	},
	{
		ID:          UpgradeChalkboardSign,
		Name:        "Chalkboard Sign",
		Description: "+5% awareness",
		Cost:        12,
		Tier:        2,
		Category:    CategorySignage,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeCardboardSign},
		Effects:     EffectBundle{EffectAwareness: 0.05},
	},
	{
		ID:          UpgradeBasicCooler,
		Name:        "Basic Cooler",
		Description: "Ice +1 day, lemons +1 day",
		Cost:        15,
		Tier:        2,
		Category:    CategoryCooling,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeStyrofoamBox},
		Effects:     EffectBundle{EffectIceShelfBonus: 1, EffectLemonShelfBonus: 1},
	},
	{
		ID:          UpgradeStorageShelf,
		Name:        "Storage Shelf",
		Description: "+75 max inventory",
		Cost:        18,
		Tier:        2,
		Category:    CategoryStorage,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeExtraCrate},
		Effects:     EffectBundle{EffectCapacityBonus: 75},
	},
	{
		ID:          UpgradeQualityLemons,
		Name:        "Quality Lemons",
		Description: "+5% recipe quality",
		Cost:        16,
		Tier:        2,
		Category:    CategoryRecipe,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeRecipeNotebook},
		Effects:     EffectBundle{EffectQualityBonus: 0.05},
	},
	{
		ID:          UpgradeUmbrella,
		Name:        "Umbrella",
		Description: "Rain -10%, cold -5%",
		Cost:        14,
		Tier:        2,
		Category:    CategoryWeather,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradePoncho},
		Effects:     EffectBundle{EffectRainReduction: 0.1, EffectColdReduction: 0.05},
	},
	{
		ID:          UpgradeBusinessCards,
		Name:        "Business Cards",
		Description: "+5% awareness",
		Cost:        10,
		Tier:        2,
		Category:    CategoryMarketing,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeFlyers},
		Effects:     EffectBundle{EffectAwareness: 0.05},
	},
	{
		ID:          UpgradeCupSleeves,
		Name:        "Cup Sleeves",
		Description: "+5% satisfaction",
		Cost:        10,
		Tier:        2,
		Category:    CategoryExperience,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradePaperNapkins},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.05},
	},
	{
		ID:          UpgradeBulkBuying,
		Name:        "Bulk Buying",
		Description: "5% off supplies",
		Cost:        15,
		Tier:        2,
		Category:    CategorySupply,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradePriceComparison},
		Effects:     EffectBundle{EffectCostReduction: 0.05},
	},
	{
		ID:          UpgradePrepStation,
		Name:        "Prep Station",
		Description: "+8% max served",
		Cost:        14,
		Tier:        2,
		Category:    CategorySpeed,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeSharpKnife},
		Effects:     EffectBundle{EffectServedBonus: 0.08},
	},
	{
		ID:          UpgradeHelpWantedSign,
		Name:        "Help Wanted Sign",
		Description: "+3% demand",
		Cost:        12,
		Tier:        2,
		Category:    CategoryStaff,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeTipJar},
		Effects:     EffectBundle{EffectAwareness: 0.03},
	},
	{
		ID:          UpgradePriceBoard,
		Name:        "Price Board",
		Description: "+2% awareness",
		Cost:        10,
		Tier:        2,
		Category:    CategoryTechnology,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeCalculator},
		Effects:     EffectBundle{EffectAwareness: 0.02},
	},
	{
		ID:          UpgradeFlowerPot,
		Name:        "Flower Pot",
		Description: "+3% satisfaction",
		Cost:        10,
		Tier:        2,
		Category:    CategoryDecor,
		Requires:    []UpgradeID{UpgradeWoodenStand, UpgradeTablecloth},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.03},
	},
	{
		ID:          UpgradeFreeSamples,
		Name:        "Free Samples",
		Description: "+5% reputation gain",
		Cost:        12,
		Tier:        2,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeWoodenStand},
		Effects:     EffectBundle{EffectReputationGain: 0.05},
	},
	{
		ID:          UpgradeCuteCups,
		Name:        "Cute Cups",
		Description: "+3% satisfaction",
		Cost:        10,
		Tier:        2,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeWoodenStand},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.03},
	},
	// Tier 3: Market Cart
	{
		ID:          UpgradeGardenBooth,
		Name:        "Garden Booth",
		Description: "Permanent spot! Unlocks Tier 4. Rent: $6/day",
		Cost:        100,
		Tier:        3,
		Category:    CategoryStand,
		Requires:    []UpgradeID{UpgradeMarketCart},
		Effects:     EffectBundle{EffectRentPerDay: 6},
	},
	{
		ID:          UpgradeWoodenSign,
		Name:        "Wooden Sign",
		Description: "+8% awareness",
		Cost:        28,
		Tier:        3,
		Category:    CategorySignage,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeChalkboardSign},
		Effects:     EffectBundle{EffectAwareness: 0.08},
	},
	{
		ID:          UpgradeInsulatedCooler,
		Name:        "Insulated Cooler",
		Description: "Ice +1, lemons +1 day",
		Cost:        30,
		Tier:        3,
		Category:    CategoryCooling,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeBasicCooler},
		Effects:     EffectBundle{EffectIceShelfBonus: 1, EffectLemonShelfBonus: 1},
	},
	{
		ID:          UpgradeStorageRack,
		Name:        "Storage Rack",
		Description: "+100 max inventory",
		Cost:        35,
		Tier:        3,
		Category:    CategoryStorage,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeStorageShelf},
		Effects:     EffectBundle{EffectCapacityBonus: 100},
	},
	{
		ID:          UpgradeOrganicSugar,
		Name:        "Organic Sugar",
		Description: "+8% recipe quality",
		Cost:        30,
		Tier:        3,
		Category:    CategoryRecipe,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeQualityLemons},
		Effects:     EffectBundle{EffectQualityBonus: 0.08},
	},
	{
		ID:          UpgradePopUpCanopy,
		Name:        "Pop-up Canopy",
		Description: "Rain -10%, cold -10%",
		Cost:        28,
		Tier:        3,
		Category:    CategoryWeather,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeUmbrella},
		Effects:     EffectBundle{EffectRainReduction: 0.1, EffectColdReduction: 0.1},
	},
	{
		ID:          UpgradeLocalPaperAd,
		Name:        "Local Paper Ad",
		Description: "+8% awareness",
		Cost:        25,
		Tier:        3,
		Category:    CategoryMarketing,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeBusinessCards},
		Effects:     EffectBundle{EffectAwareness: 0.08},
	},
	{
		ID:          UpgradeBenchSeating,
		Name:        "Bench Seating",
		Description: "+8% satisfaction",
		Cost:        30,
		Tier:        3,
		Category:    CategoryExperience,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeCupSleeves},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.08},
	},
	{
		ID:          UpgradeFarmerDeal,
		Name:        "Farmer Deal",
		Description: "6% off supplies",
		Cost:        30,
		Tier:        3,
		Category:    CategorySupply,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeBulkBuying},
		Effects:     EffectBundle{EffectCostReduction: 0.06},
	},
	{
		ID:          UpgradeSpeedPitcher,
		Name:        "Speed Pitcher",
		Description: "+10% max served",
		Cost:        28,
		Tier:        3,
		Category:    CategorySpeed,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradePrepStation},
		Effects:     EffectBundle{EffectServedBonus: 0.1},
	},
	{
		ID:          UpgradePartTimeHelper,
		Name:        "Part-time Helper",
		Description: "+5% demand, +5% served",
		Cost:        32,
		Tier:        3,
		Category:    CategoryStaff,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeHelpWantedSign},
		Effects:     EffectBundle{EffectAwareness: 0.05, EffectServedBonus: 0.05},
	},
	{
		ID:          UpgradeWeatherApp,
		Name:        "Weather App",
		Description: "Forecast 85% accurate",
		Cost:        22,
		Tier:        3,
		Category:    CategoryTechnology,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradePriceBoard},
		Effects:     EffectBundle{EffectForecastAccuracy: 0.85},
	},
	{
		ID:          UpgradeStringLights,
		Name:        "String Lights",
		Description: "+5% satisfaction, +3% rep",
		Cost:        22,
		Tier:        3,
		Category:    CategoryDecor,
		Requires:    []UpgradeID{UpgradeMarketCart, UpgradeFlowerPot},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.05, EffectReputationGain: 0.03},
	},
	{
		ID:          UpgradeLemonGarden,
		Name:        "Lemon Garden",
		Description: "10 free lemons/day",
		Cost:        40,
		Tier:        3,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeMarketCart},
		Effects:     EffectBundle{EffectFreeLemons: 10},
	},
	{
		ID:          UpgradeSugarDispenser,
		Name:        "Sugar Dispenser",
		Description: "+1 day sugar shelf life",
		Cost:        25,
		Tier:        3,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeMarketCart},
		Effects:     EffectBundle{EffectSugarShelfBonus: 1},
	},
	{
		ID:          UpgradeLoyaltyPunchCard,
		Name:        "Loyalty Punch Card",
		Description: "+8% reputation gain",
		Cost:        28,
		Tier:        3,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeMarketCart},
		Effects:     EffectBundle{EffectReputationGain: 0.08},
	},
	// Tier 4: Garden Booth
	{
		ID:          UpgradeCornerShop,
		Name:        "Corner Shop",
		Description: "A real shop! Unlocks Tier 5. Rent: $10/day",
		Cost:        175,
		Tier:        4,
		Category:    CategoryStand,
		Requires:    []UpgradeID{UpgradeGardenBooth},
		Effects:     EffectBundle{EffectRentPerDay: 10},
	},
	{
		ID:          UpgradeNeonSign,
		Name:        "Neon Sign",
		Description: "+12% awareness",
		Cost:        55,
		Tier:        4,
		Category:    CategorySignage,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeWoodenSign},
		Effects:     EffectBundle{EffectAwareness: 0.12},
	},
	{
		ID:          UpgradeIceMachine,
		Name:        "Ice Machine",
		Description: "Ice +1, lemons +1, sugar +1 day",
		Cost:        65,
		Tier:        4,
		Category:    CategoryCooling,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeInsulatedCooler},
		Effects:     EffectBundle{EffectIceShelfBonus: 1, EffectLemonShelfBonus: 1, EffectSugarShelfBonus: 1},
	},
	{
		ID:          UpgradeMiniWarehouse,
		Name:        "Mini Warehouse",
		Description: "+150 max inventory",
		Cost:        60,
		Tier:        4,
		Category:    CategoryStorage,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeStorageRack},
		Effects:     EffectBundle{EffectCapacityBonus: 150},
	},
	{
		ID:          UpgradePremiumIce,
		Name:        "Premium Ice",
		Description: "+10% recipe quality",
		Cost:        55,
		Tier:        4,
		Category:    CategoryRecipe,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeOrganicSugar},
		Effects:     EffectBundle{EffectQualityBonus: 0.1},
	},
	{
		ID:          UpgradeWeatherproofTent,
		Name:        "Weatherproof Tent",
		Description: "Rain -10%, cold -10%",
		Cost:        55,
		Tier:        4,
		Category:    CategoryWeather,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradePopUpCanopy},
		Effects:     EffectBundle{EffectRainReduction: 0.1, EffectColdReduction: 0.1},
	},
	{
		ID:          UpgradeSocialMedia,
		Name:        "Social Media",
		Description: "+12% awareness",
		Cost:        50,
		Tier:        4,
		Category:    CategoryMarketing,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeLocalPaperAd},
		Effects:     EffectBundle{EffectAwareness: 0.12},
	},
	{
		ID:          UpgradeMusicSpeaker,
		Name:        "Music Speaker",
		Description: "+10% satisfaction",
		Cost:        50,
		Tier:        4,
		Category:    CategoryExperience,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeBenchSeating},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.1},
	},
	{
		ID:          UpgradeWholesaleAccount,
		Name:        "Wholesale Account",
		Description: "7% off supplies",
		Cost:        60,
		Tier:        4,
		Category:    CategorySupply,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeFarmerDeal},
		Effects:     EffectBundle{EffectCostReduction: 0.07},
	},
	{
		ID:          UpgradeDoublePitcher,
		Name:        "Double Pitcher",
		Description: "+12% max served",
		Cost:        55,
		Tier:        4,
		Category:    CategorySpeed,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeSpeedPitcher},
		Effects:     EffectBundle{EffectServedBonus: 0.12},
	},
	{
		ID:          UpgradeFullTimeEmployee,
		Name:        "Full-time Employee",
		Description: "+8% demand, +8% served",
		Cost:        65,
		Tier:        4,
		Category:    CategoryStaff,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradePartTimeHelper},
		Effects:     EffectBundle{EffectAwareness: 0.08, EffectServedBonus: 0.08},
	},
	{
		ID:          UpgradePosSystem,
		Name:        "POS System",
		Description: "+3% revenue",
		Cost:        50,
		Tier:        4,
		Category:    CategoryTechnology,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeWeatherApp},
		Effects:     EffectBundle{EffectRevenueBonus: 0.03},
	},
	{
		ID:          UpgradeThemedDecor,
		Name:        "Themed Decor",
		Description: "+8% satisfaction, +5% rep",
		Cost:        45,
		Tier:        4,
		Category:    CategoryDecor,
		Requires:    []UpgradeID{UpgradeGardenBooth, UpgradeStringLights},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.08, EffectReputationGain: 0.05},
	},
	{
		ID:          UpgradeInsurancePolicy,
		Name:        "Insurance Policy",
		Description: "Reduce negative events 25%",
		Cost:        55,
		Tier:        4,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeGardenBooth},
		Effects:     EffectBundle{EffectEventMitigation: 0.25},
	},
	{
		ID:          UpgradeHappyHour,
		Name:        "Happy Hour",
		Description: "+10% demand",
		Cost:        48,
		Tier:        4,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeGardenBooth},
		Effects:     EffectBundle{EffectAwareness: 0.1},
	},
	{
		ID:          UpgradeSecretMenu,
		Name:        "Secret Menu",
		Description: "+10% satisfaction",
		Cost:        52,
		Tier:        4,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeGardenBooth},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.1},
	},
	// Tier 5: Corner Shop
	{
		ID:          UpgradeDowntownStore,
		Name:        "Downtown Store",
		Description: "Prime real estate! Unlocks Tier 6. Rent: $16/day",
		Cost:        300,
		Tier:        5,
		Category:    CategoryStand,
		Requires:    []UpgradeID{UpgradeCornerShop},
		Effects:     EffectBundle{EffectRentPerDay: 16},
	},
	{
		ID:          UpgradeLedDisplay,
		Name:        "LED Display",
		Description: "+15% awareness",
		Cost:        90,
		Tier:        5,
		Category:    CategorySignage,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeNeonSign},
		Effects:     EffectBundle{EffectAwareness: 0.15},
	},
	{
		ID:          UpgradeIndustrialFreezer,
		Name:        "Industrial Freezer",
		Description: "Ice +1, lemons +1, sugar +1 day",
		Cost:        100,
		Tier:        5,
		Category:    CategoryCooling,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeIceMachine},
		Effects:     EffectBundle{EffectIceShelfBonus: 1, EffectLemonShelfBonus: 1, EffectSugarShelfBonus: 1},
	},
	{
		ID:          UpgradeFullWarehouse,
		Name:        "Full Warehouse",
		Description: "+200 max inventory",
		Cost:        95,
		Tier:        5,
		Category:    CategoryStorage,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeMiniWarehouse},
		Effects:     EffectBundle{EffectCapacityBonus: 200},
	},
	{
		ID:          UpgradeSecretRecipe,
		Name:        "Secret Recipe",
		Description: "+12% recipe quality",
		Cost:        85,
		Tier:        5,
		Category:    CategoryRecipe,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradePremiumIce},
		Effects:     EffectBundle{EffectQualityBonus: 0.12},
	},
	{
		ID:          UpgradeClimateControl,
		Name:        "Climate Control",
		Description: "Rain -10%, cold -10%",
		Cost:        85,
		Tier:        5,
		Category:    CategoryWeather,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeWeatherproofTent},
		Effects:     EffectBundle{EffectRainReduction: 0.1, EffectColdReduction: 0.1},
	},
	{
		ID:          UpgradeInfluencerDeal,
		Name:        "Influencer Deal",
		Description: "+15% awareness",
		Cost:        100,
		Tier:        5,
		Category:    CategoryMarketing,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeSocialMedia},
		Effects:     EffectBundle{EffectAwareness: 0.15},
	},
	{
		ID:          UpgradeVipArea,
		Name:        "VIP Area",
		Description: "+12% satisfaction",
		Cost:        80,
		Tier:        5,
		Category:    CategoryExperience,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeMusicSpeaker},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.12},
	},
	{
		ID:          UpgradeBulkSupplier,
		Name:        "Bulk Supplier",
		Description: "8% off supplies",
		Cost:        95,
		Tier:        5,
		Category:    CategorySupply,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeWholesaleAccount},
		Effects:     EffectBundle{EffectCostReduction: 0.08},
	},
	{
		ID:          UpgradeAutomatedJuicer,
		Name:        "Automated Juicer",
		Description: "+15% max served",
		Cost:        85,
		Tier:        5,
		Category:    CategorySpeed,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeDoublePitcher},
		Effects:     EffectBundle{EffectServedBonus: 0.15},
	},
	{
		ID:          UpgradeShiftManager,
		Name:        "Shift Manager",
		Description: "+10% demand, +10% served",
		Cost:        95,
		Tier:        5,
		Category:    CategoryStaff,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeFullTimeEmployee},
		Effects:     EffectBundle{EffectAwareness: 0.1, EffectServedBonus: 0.1},
	},
	{
		ID:          UpgradeAnalyticsDashboard,
		Name:        "Analytics Dashboard",
		Description: "+5% revenue",
		Cost:        80,
		Tier:        5,
		Category:    CategoryTechnology,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradePosSystem},
		Effects:     EffectBundle{EffectRevenueBonus: 0.05},
	},
	{
		ID:          UpgradeBrandedCups,
		Name:        "Branded Cups",
		Description: "+10% satisfaction, +8% rep",
		Cost:        70,
		Tier:        5,
		Category:    CategoryDecor,
		Requires:    []UpgradeID{UpgradeCornerShop, UpgradeThemedDecor},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.1, EffectReputationGain: 0.08},
	},
	{
		ID:          UpgradeCateringService,
		Name:        "Catering Service",
		Description: "+12% demand",
		Cost:        105,
		Tier:        5,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeCornerShop},
		Effects:     EffectBundle{EffectAwareness: 0.12},
	},
	{
		ID:          UpgradeLoyaltyApp,
		Name:        "Loyalty App",
		Description: "+15% reputation gain",
		Cost:        85,
		Tier:        5,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeCornerShop},
		Effects:     EffectBundle{EffectReputationGain: 0.15},
	},
	{
		ID:          UpgradeFranchiseLicense,
		Name:        "Franchise License",
		Description: "Passive income $2/day",
		Cost:        130,
		Tier:        5,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeCornerShop},
		Effects:     EffectBundle{EffectPassiveIncome: 2},
	},
	// Tier 6: Downtown Store
	{
		ID:          UpgradeFoodTruckFleet,
		Name:        "Food Truck Fleet",
		Description: "Go big! Unlocks the Supercell Superstore. Rent: $24/day",
		Cost:        500,
		Tier:        6,
		Category:    CategoryStand,
		Requires:    []UpgradeID{UpgradeDowntownStore},
		Effects:     EffectBundle{EffectRentPerDay: 24},
	},
	{
		ID:          UpgradeDigitalBillboard,
		Name:        "Digital Billboard",
		Description: "+18% awareness",
		Cost:        160,
		Tier:        6,
		Category:    CategorySignage,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeLedDisplay},
		Effects:     EffectBundle{EffectAwareness: 0.18},
	},
	{
		ID:          UpgradeColdStorage,
		Name:        "Cold Storage",
		Description: "Ice +1, lemons +1, sugar +1 day",
		Cost:        175,
		Tier:        6,
		Category:    CategoryCooling,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeIndustrialFreezer},
		Effects:     EffectBundle{EffectIceShelfBonus: 1, EffectLemonShelfBonus: 1, EffectSugarShelfBonus: 1},
	},
	{
		ID:          UpgradeDistributionHub,
		Name:        "Distribution Hub",
		Description: "+250 max inventory",
		Cost:        150,
		Tier:        6,
		Category:    CategoryStorage,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeFullWarehouse},
		Effects:     EffectBundle{EffectCapacityBonus: 250},
	},
	{
		ID:          UpgradeMasterRecipe,
		Name:        "Master Recipe",
		Description: "+15% recipe quality",
		Cost:        140,
		Tier:        6,
		Category:    CategoryRecipe,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeSecretRecipe},
		Effects:     EffectBundle{EffectQualityBonus: 0.15},
	},
	{
		ID:          UpgradeIndoorSeating,
		Name:        "Indoor Seating",
		Description: "Rain -10%, cold -10%",
		Cost:        155,
		Tier:        6,
		Category:    CategoryWeather,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeClimateControl},
		Effects:     EffectBundle{EffectRainReduction: 0.1, EffectColdReduction: 0.1},
	},
	{
		ID:          UpgradeTvCommercial,
		Name:        "TV Commercial",
		Description: "+18% awareness",
		Cost:        180,
		Tier:        6,
		Category:    CategoryMarketing,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeInfluencerDeal},
		Effects:     EffectBundle{EffectAwareness: 0.18},
	},
	{
		ID:          UpgradePremiumService,
		Name:        "Premium Service",
		Description: "+15% satisfaction",
		Cost:        130,
		Tier:        6,
		Category:    CategoryExperience,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeVipArea},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.15},
	},
	{
		ID:          UpgradeImportDeal,
		Name:        "Import Deal",
		Description: "8% off supplies",
		Cost:        155,
		Tier:        6,
		Category:    CategorySupply,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeBulkSupplier},
		Effects:     EffectBundle{EffectCostReduction: 0.08},
	},
	{
		ID:          UpgradeDriveThrough,
		Name:        "Drive-Through",
		Description: "+18% max served",
		Cost:        150,
		Tier:        6,
		Category:    CategorySpeed,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeAutomatedJuicer},
		Effects:     EffectBundle{EffectServedBonus: 0.18},
	},
	{
		ID:          UpgradeFullCrew,
		Name:        "Full Crew",
		Description: "+12% demand, +12% served",
		Cost:        165,
		Tier:        6,
		Category:    CategoryStaff,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeShiftManager},
		Effects:     EffectBundle{EffectAwareness: 0.12, EffectServedBonus: 0.12},
	},
	{
		ID:          UpgradeAiForecasting,
		Name:        "AI Forecasting",
		Description: "Forecast 95% accurate, +5% revenue, 3-day outlook",
		Cost:        140,
		Tier:        6,
		Category:    CategoryTechnology,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeAnalyticsDashboard},
		Effects:     EffectBundle{EffectForecastAccuracy: 0.95, EffectRevenueBonus: 0.05, EffectShowExtendedForecast: 1},
	},
	{
		ID:          UpgradeFlagshipDesign,
		Name:        "Flagship Design",
		Description: "+12% satisfaction, +10% rep",
		Cost:        120,
		Tier:        6,
		Category:    CategoryDecor,
		Requires:    []UpgradeID{UpgradeDowntownStore, UpgradeBrandedCups},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.12, EffectReputationGain: 0.1},
	},
	{
		ID:          UpgradeFoodFestivalPass,
		Name:        "Food Festival Pass",
		Description: "Positive events +30%",
		Cost:        130,
		Tier:        6,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeDowntownStore},
		Effects:     EffectBundle{EffectEventAmplify: 0.3},
	},
	{
		ID:          UpgradeDeliveryService,
		Name:        "Delivery Service",
		Description: "+15% rainy day demand",
		Cost:        150,
		Tier:        6,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeDowntownStore},
		Effects:     EffectBundle{EffectRainReduction: 0.15},
	},
	{
		ID:          UpgradeCelebrityEndorsement,
		Name:        "Celebrity Endorsement",
		Description: "+15% awareness",
		Cost:        200,
		Tier:        6,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeDowntownStore},
		Effects:     EffectBundle{EffectAwareness: 0.15},
	},
	// Tier 7: Supercell Superstore
	{
		ID:          UpgradeHolographicDisplay,
		Name:        "Arena Jumbotron",
		Description: "Clash Royale arena screens draw massive crowds. +20% awareness",
		Cost:        220,
		Tier:        7,
		Category:    CategorySignage,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeDigitalBillboard},
		Effects:     EffectBundle{EffectAwareness: 0.2},
	},
	{
		ID:          UpgradeCryogenicChiller,
		Name:        "Freeze Spell Cooler",
		Description: "Magical freeze keeps everything perfectly chilled. Ice +1, lemons +1, sugar +1 day",
		Cost:        260,
		Tier:        7,
		Category:    CategoryCooling,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeColdStorage},
		Effects:     EffectBundle{EffectIceShelfBonus: 1, EffectLemonShelfBonus: 1, EffectSugarShelfBonus: 1},
	},
	{
		ID:          UpgradeSupplyNetwork,
		Name:        "Clan Castle Vault",
		Description: "Store supplies in an impenetrable clan vault. +300 max inventory",
		Cost:        220,
		Tier:        7,
		Category:    CategoryStorage,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeDistributionHub},
		Effects:     EffectBundle{EffectCapacityBonus: 300},
	},
	{
		ID:          UpgradeLegendaryFormula,
		Name:        "Elixir Infusion",
		Description: "Ancient elixir recipe passed down by Wizards. +18% recipe quality",
		Cost:        250,
		Tier:        7,
		Category:    CategoryRecipe,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeMasterRecipe},
		Effects:     EffectBundle{EffectQualityBonus: 0.18},
	},
	{
		ID:          UpgradeWeatherDome,
		Name:        "Supercell Sauna",
		Description: "True Finnish weather resilience. Rain -15%, cold -15%",
		Cost:        260,
		Tier:        7,
		Category:    CategoryWeather,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeIndoorSeating},
		Effects:     EffectBundle{EffectRainReduction: 0.15, EffectColdReduction: 0.15},
	},
	{
		ID:          UpgradeNationalBrand,
		Name:        "Clash TV Broadcast",
		Description: "Broadcast your store to millions of viewers. +22% awareness",
		Cost:        300,
		Tier:        7,
		Category:    CategoryMarketing,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeTvCommercial},
		Effects:     EffectBundle{EffectAwareness: 0.22},
	},
	{
		ID:          UpgradeFiveStarService,
		Name:        "Legends League Lounge",
		Description: "Only the best get into the Legends League. +18% satisfaction",
		Cost:        220,
		Tier:        7,
		Category:    CategoryExperience,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradePremiumService},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.18},
	},
	{
		ID:          UpgradeVerticalFarm,
		Name:        "Hay Day Supply Farm",
		Description: "Grow your own lemons, Hay Day style. 8% off, 15 free lemons/day",
		Cost:        260,
		Tier:        7,
		Category:    CategorySupply,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeImportDeal},
		Effects:     EffectBundle{EffectCostReduction: 0.08, EffectFreeLemons: 15},
	},
	{
		ID:          UpgradeExpressLane,
		Name:        "Haste Spell Express",
		Description: "Everything moves faster with a little magic. +22% max served",
		Cost:        220,
		Tier:        7,
		Category:    CategorySpeed,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeDriveThrough},
		Effects:     EffectBundle{EffectServedBonus: 0.22},
	},
	{
		ID:          UpgradeCorporateTeam,
		Name:        "Barbarian Workforce",
		Description: "An army of Barbarians runs the store. +15% demand, +15% served",
		Cost:        300,
		Tier:        7,
		Category:    CategoryStaff,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeFullCrew},
		Effects:     EffectBundle{EffectAwareness: 0.15, EffectServedBonus: 0.15},
	},
	{
		ID:          UpgradeMarketIntelligence,
		Name:        "O.T.T.O Bot Analytics",
		Description: "The master builder's bot crunches all the numbers. +8% revenue, 97% forecast",
		Cost:        260,
		Tier:        7,
		Category:    CategoryTechnology,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeAiForecasting},
		Effects:     EffectBundle{EffectRevenueBonus: 0.08, EffectForecastAccuracy: 0.97},
	},
	{
		ID:          UpgradeIconicBrand,
		Name:        "Starr Park Makeover",
		Description: "Themed after the legendary Starr Park. +15% satisfaction, +12% rep",
		Cost:        220,
		Tier:        7,
		Category:    CategoryDecor,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet, UpgradeFlagshipDesign},
		Effects:     EffectBundle{EffectSatisfactionBonus: 0.15, EffectReputationGain: 0.12},
	},
	{
		ID:          UpgradeLemonadeMuseum,
		Name:        "Clan Hall of Fame",
		Description: "Your clan's greatest achievements on display. +20% reputation gain",
		Cost:        300,
		Tier:        7,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet},
		Effects:     EffectBundle{EffectReputationGain: 0.2},
	},
	{
		ID:          UpgradeWorldRecord,
		Name:        "Global Tournament",
		Description: "Host a massive tournament at your store. +18% demand",
		Cost:        270,
		Tier:        7,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet},
		Effects:     EffectBundle{EffectAwareness: 0.18},
	},
	{
		ID:          UpgradeLemonadeEmpire,
		Name:        "Supercell Partnership",
		Description: "The ultimate deal: Supercell backs your empire",
		Cost:        500,
		Tier:        7,
		Category:    CategorySpecial,
		Requires:    []UpgradeID{UpgradeFoodTruckFleet},
		Effects:     EffectBundle{EffectAwareness: 0.15, EffectSatisfactionBonus: 0.1, EffectReputationGain: 0.15, EffectQualityBonus: 0.1, EffectCostReduction: 0.05, EffectRevenueBonus: 0.1, EffectPassiveIncome: 5},
	},
}
