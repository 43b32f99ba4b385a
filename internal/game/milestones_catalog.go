package game

const (
	MilestoneFirstSale        MilestoneID = "first_sale"
	MilestoneCenturion        MilestoneID = "centurion"
	MilestoneRainyDayFund     MilestoneID = "rainy_day_fund"
	MilestonePerfectDay       MilestoneID = "perfect_day"
	MilestoneEntrepreneur     MilestoneID = "entrepreneur"
	MilestoneWeatherproof     MilestoneID = "weatherproof"
	MilestoneUpgradeCollector MilestoneID = "upgrade_collector"
	MilestoneSurvivor         MilestoneID = "survivor"
	MilestoneTycoon           MilestoneID = "tycoon"
	MilestonePennyPincher     MilestoneID = "penny_pincher"
	MilestoneEventSurvivor    MilestoneID = "event_survivor"
	MilestoneBigSpender       MilestoneID = "big_spender"
	MilestoneLemonKing        MilestoneID = "lemon_king"
	MilestoneComebackKid      MilestoneID = "comeback_kid"
	MilestoneFullHouse        MilestoneID = "full_house"

	MilestoneThousandCups  MilestoneID = "thousand_cups"
	MilestoneHighRoller    MilestoneID = "high_roller"
	MilestoneVeteran       MilestoneID = "veteran"
	MilestoneNestEgg       MilestoneID = "nest_egg"
	MilestoneRushHour      MilestoneID = "rush_hour"
	MilestoneBigDay        MilestoneID = "big_day"
	MilestonePremiumPour   MilestoneID = "premium_pour"
	MilestoneCrowdPleaser  MilestoneID = "crowd_pleaser"
	MilestoneHotStreak     MilestoneID = "hot_streak"
	MilestoneGoldenMonth   MilestoneID = "golden_month"
	MilestoneFanFavorite   MilestoneID = "fan_favorite"
	MilestoneWasteNot      MilestoneID = "waste_not"
	MilestoneSugarFree     MilestoneID = "sugar_free"
	MilestoneLemonless     MilestoneID = "lemonless"
	MilestoneRoomTemp      MilestoneID = "room_temperature"
	MilestoneBalancedBlend MilestoneID = "balanced_blend"
	MilestoneDoubleTrouble MilestoneID = "double_trouble"
	MilestonePerfectStorm  MilestoneID = "perfect_storm"
	MilestoneStarStruck    MilestoneID = "star_struck"
	MilestoneCleanBill     MilestoneID = "clean_bill"
	MilestoneStockpile     MilestoneID = "stockpile"
	MilestoneCleanSweep    MilestoneID = "clean_sweep"
	MilestoneFirstUpgrade  MilestoneID = "first_upgrade"
	MilestoneSuperstore    MilestoneID = "superstore"
	MilestoneLocalLegend   MilestoneID = "local_legend"
)

var milestoneCatalog = []MilestoneDef{
	{
		ID:          MilestoneFirstSale,
		Name:        "First Sale",
		Description: "Sell your very first cup.",
		Category:    MilestoneSingleDay,
		Check:       func(c MilestoneContext) bool { return c.Result.UnitsSold > 0 },
	},
	{
		ID:          MilestoneCenturion,
		Name:        "Centurion",
		Description: "Sell 100 cups in total.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.State.Stats.LifetimeUnits >= 100 },
	},
	{
		ID:          MilestoneRainyDayFund,
		Name:        "Rainy Day Fund",
		Description: "Hold $100 or more in cash.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.State.Cash >= 100 },
	},
	{
		ID:          MilestonePerfectDay,
		Name:        "Perfect Day",
		Description: "Reach 100 customer satisfaction.",
		Category:    MilestoneSingleDay,
		Check:       func(c MilestoneContext) bool { return c.Result.Satisfaction >= 100 },
	},
	{
		ID:          MilestoneEntrepreneur,
		Name:        "Entrepreneur",
		Description: "Make $50 profit in a single day.",
		Category:    MilestoneSingleDay,
		Check:       func(c MilestoneContext) bool { return c.Result.Profit >= 50 },
	},
	{
		ID:          MilestoneWeatherproof,
		Name:        "Weatherproof",
		Description: "Sell 10 or more cups on a stormy day.",
		Category:    MilestoneSingleDay,
		Check: func(c MilestoneContext) bool {
			return c.Result.Weather == WeatherStormy && c.Result.UnitsSold >= 10
		},
	},
	{
		ID:          MilestoneUpgradeCollector,
		Name:        "Upgrade Collector",
		Description: "Own every upgrade.",
		Category:    MilestoneUpgrades,
		Check: func(c MilestoneContext) bool {
			for _, def := range upgradeCatalog {
				if !c.State.Upgrades[def.ID] {
					return false
				}
			}
			return true
		},
	},
	{
		ID:          MilestoneSurvivor,
		Name:        "Survivor",
		Description: "Reach day 30.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.Result.Day >= 30 },
	},
	{
		ID:          MilestoneTycoon,
		Name:        "Tycoon",
		Description: "Earn $500 in lifetime revenue.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.State.Stats.LifetimeRevenue >= 500 },
	},
	{
		ID:          MilestonePennyPincher,
		Name:        "Penny Pincher",
		Description: "Turn a profit seven days in a row.",
		Category:    MilestoneStreak,
		Check:       streak(7, profitable),
	},
	{
		ID:          MilestoneEventSurvivor,
		Name:        "Event Survivor",
		Description: "Turn a profit on a day with a harmful event.",
		Category:    MilestoneEvents,
		Check: func(c MilestoneContext) bool {
			return c.Result.Profit > 0 && negativeEvents(c.Result) > 0
		},
	},
	{
		ID:          MilestoneBigSpender,
		Name:        "Big Spender",
		Description: "Spend $50 or more in one planning session.",
		Category:    MilestoneSingleDay,
		Check:       func(c MilestoneContext) bool { return c.SpentToday >= 50 },
	},
	{
		ID:          MilestoneLemonKing,
		Name:        "Lemon King",
		Description: "Sell 500 cups in total.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.State.Stats.LifetimeUnits >= 500 },
	},
	{
		ID:          MilestoneComebackKid,
		Name:        "Comeback Kid",
		Description: "Turn a profit the day after losing money.",
		Category:    MilestoneStreak,
		Check: func(c MilestoneContext) bool {
			prev, ok := c.previous()
			return ok && prev.Profit < 0 && c.Result.Profit > 0
		},
	},
	{
		ID:          MilestoneFullHouse,
		Name:        "Full House",
		Description: "Serve every customer who showed up, at least 20 of them.",
		Category:    MilestoneSingleDay,
		Check: func(c MilestoneContext) bool {
			return c.Result.UnitsSold >= 20 && c.Result.UnitsSold >= c.Result.Demand
		},
	},

	{
		ID:          MilestoneThousandCups,
		Name:        "Thousand Cups",
		Description: "Sell 1,000 cups in total.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.State.Stats.LifetimeUnits >= 1000 },
	},
	{
		ID:          MilestoneHighRoller,
		Name:        "High Roller",
		Description: "Earn $2,000 in lifetime revenue.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.State.Stats.LifetimeRevenue >= 2000 },
	},
	{
		ID:          MilestoneVeteran,
		Name:        "Veteran",
		Description: "Reach day 60.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.Result.Day >= 60 },
	},
	{
		ID:          MilestoneNestEgg,
		Name:        "Nest Egg",
		Description: "Hold $500 or more in cash.",
		Category:    MilestoneCumulative,
		Check:       func(c MilestoneContext) bool { return c.State.Cash >= 500 },
	},
	{
		ID:          MilestoneRushHour,
		Name:        "Rush Hour",
		Description: "Sell 100 cups in a single day.",
		Category:    MilestoneSingleDay,
		Check:       func(c MilestoneContext) bool { return c.Result.UnitsSold >= 100 },
	},
	{
		ID:          MilestoneBigDay,
		Name:        "Big Day",
		Description: "Take $100 in revenue in a single day.",
		Category:    MilestoneSingleDay,
		Check:       func(c MilestoneContext) bool { return c.Result.Revenue >= 100 },
	},
	{
		ID:          MilestonePremiumPour,
		Name:        "Premium Pour",
		Description: "Sell 20 cups in one day at $3.00 or more.",
		Category:    MilestoneSingleDay,
		Check: func(c MilestoneContext) bool {
			return c.Result.UnitsSold >= 20 && c.Result.Price >= 3
		},
	},
	{
		ID:          MilestoneCrowdPleaser,
		Name:        "Crowd Pleaser",
		Description: "Reach 90 customer satisfaction.",
		Category:    MilestoneSingleDay,
		Check:       func(c MilestoneContext) bool { return c.Result.Satisfaction >= 90 },
	},
	{
		ID:          MilestoneHotStreak,
		Name:        "Hot Streak",
		Description: "Turn a profit three days in a row.",
		Category:    MilestoneStreak,
		Check:       streak(3, profitable),
	},
	{
		ID:          MilestoneGoldenMonth,
		Name:        "Golden Month",
		Description: "Turn a profit thirty days in a row.",
		Category:    MilestoneStreak,
		Check:       streak(30, profitable),
	},
	{
		ID:          MilestoneFanFavorite,
		Name:        "Fan Favorite",
		Description: "Keep satisfaction at 80 or more for five days running.",
		Category:    MilestoneStreak,
		Check:       streak(5, func(r DayResult) bool { return r.UnitsSold > 0 && r.Satisfaction >= 80 }),
	},
	{
		ID:          MilestoneWasteNot,
		Name:        "Waste Not",
		Description: "Sell for three days running without any spoilage or melt.",
		Category:    MilestoneStreak,
		Check: streak(3, func(r DayResult) bool {
			return r.UnitsSold > 0 && r.IceMelted == 0 && r.IceDestroyed == 0 && r.Spoiled.IsEmpty()
		}),
	},
	{
		ID:          MilestoneSugarFree,
		Name:        "Sugar Free",
		Description: "Sell 10 cups of a recipe with no sugar.",
		Category:    MilestoneRecipe,
		Check:       soldWithout(SupplySugar),
	},
	{
		ID:          MilestoneLemonless,
		Name:        "Lemonless Lemonade",
		Description: "Sell 10 cups of a recipe with no lemons.",
		Category:    MilestoneRecipe,
		Check:       soldWithout(SupplyLemons),
	},
	{
		ID:          MilestoneRoomTemp,
		Name:        "Room Temperature",
		Description: "Sell 10 cups of a recipe with no ice.",
		Category:    MilestoneRecipe,
		Check:       soldWithout(SupplyIce),
	},
	{
		ID:          MilestoneBalancedBlend,
		Name:        "Balanced Blend",
		Description: "Sell a recipe that sits in every ideal range for the day's weather.",
		Category:    MilestoneRecipe,
		Check: func(c MilestoneContext) bool {
			return c.Result.UnitsSold > 0 && recipeOnTarget(c.Result)
		},
	},
	{
		ID:          MilestoneDoubleTrouble,
		Name:        "Double Trouble",
		Description: "Turn a profit with two harmful events on the same day.",
		Category:    MilestoneEvents,
		Check: func(c MilestoneContext) bool {
			return c.Result.Profit > 0 && negativeEvents(c.Result) >= 2
		},
	},
	{
		ID:          MilestonePerfectStorm,
		Name:        "Perfect Storm",
		Description: "Get caught by surprise rain on an already wet day.",
		Category:    MilestoneEvents,
		Check: func(c MilestoneContext) bool {
			return c.Result.Weather.isWet() && c.Result.HasEvent(EventSurpriseRain)
		},
	},
	{
		ID:          MilestoneStarStruck,
		Name:        "Star Struck",
		Description: "Sell 50 cups on the day a celebrity is spotted.",
		Category:    MilestoneEvents,
		Check: func(c MilestoneContext) bool {
			return c.Result.HasEvent(EventCelebritySighting) && c.Result.UnitsSold >= 50
		},
	},
	{
		ID:          MilestoneCleanBill,
		Name:        "Clean Bill of Health",
		Description: "Pass a health inspection.",
		Category:    MilestoneEvents,
		Check: func(c MilestoneContext) bool {
			return c.Result.HasEvent(EventHealthInspector) && c.Result.UnitsSold > 0 && c.Result.Satisfaction >= 60
		},
	},
	{
		ID:          MilestoneStockpile,
		Name:        "Stockpile",
		Description: "End a day with 150 or more units in storage.",
		Category:    MilestoneInventory,
		Check:       func(c MilestoneContext) bool { return c.State.Inventory.Units() >= 150 },
	},
	{
		ID:          MilestoneCleanSweep,
		Name:        "Clean Sweep",
		Description: "Turn a profit and end the day with empty storage.",
		Category:    MilestoneInventory,
		Check: func(c MilestoneContext) bool {
			return c.Result.Profit > 0 && c.State.Inventory.Stock().IsEmpty()
		},
	},
	{
		ID:          MilestoneFirstUpgrade,
		Name:        "Open for Business",
		Description: "Own your first upgrade.",
		Category:    MilestoneUpgrades,
		Check:       func(c MilestoneContext) bool { return ownedCount(c.State.Upgrades) > 0 },
	},
	{
		ID:          MilestoneSuperstore,
		Name:        "Superstore",
		Description: "Own an upgrade from the top tier.",
		Category:    MilestoneUpgrades,
		Check:       func(c MilestoneContext) bool { return ownsTier(c.State.Upgrades, TierCount) },
	},
	{
		ID:          MilestoneLocalLegend,
		Name:        "Local Legend",
		Description: "Reach 100 reputation.",
		Category:    MilestoneReputation,
		Check:       func(c MilestoneContext) bool { return c.State.Reputation >= 100 },
	},
}
