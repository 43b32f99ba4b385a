package game

const (
	EventHeatWave           EventID = "heat_wave"
	EventStreetFair         EventID = "street_fair"
	EventConstruction       EventID = "construction"
	EventSchoolFieldTrip    EventID = "school_field_trip"
	EventCompetingStand     EventID = "competing_stand"
	EventLemonShortage      EventID = "lemon_shortage"
	EventSugarShortage      EventID = "sugar_shortage"
	EventIceTruckDelay      EventID = "ice_truck_delay"
	EventCupShortage        EventID = "cup_shortage"
	EventCitrusBlight       EventID = "citrus_blight"
	EventLemonGlut          EventID = "lemon_glut"
	EventIceSale            EventID = "ice_sale"
	EventSugarSurplus       EventID = "sugar_surplus"
	EventCupPromo           EventID = "cup_promo"
	EventLocalSportsGame    EventID = "local_sports_game"
	EventCharityMarathon    EventID = "charity_marathon"
	EventGarageSale         EventID = "garage_sale"
	EventLemonadeDay        EventID = "lemonade_day"
	EventRivalClosed        EventID = "rival_closed"
	EventParkConcert        EventID = "park_concert"
	EventRoadClosure        EventID = "road_closure"
	EventVappuPicnic        EventID = "vappu_picnic"
	EventDietTrend          EventID = "diet_trend"
	EventHealthCraze        EventID = "health_craze"
	EventCitrusAllergyScare EventID = "citrus_allergy_scare"
	EventHealthInspector    EventID = "health_inspector"
	EventNewspaperFeature   EventID = "newspaper_feature"
	EventPowerOutage        EventID = "power_outage"
	EventCelebritySighting  EventID = "celebrity_sighting"
	EventSurpriseRain       EventID = "surprise_rain"
	EventTouristBus         EventID = "tourist_bus"
	EventWaterMainBreak     EventID = "water_main_break"
	EventBeeSighting        EventID = "bee_sighting"
	EventParkingLotClosed   EventID = "parking_lot_closed"
	EventHeatBurst          EventID = "heat_burst"
	EventFoodBlogReview     EventID = "food_blog_review"
	EventBadOnlineReview    EventID = "bad_online_review"
	EventViralVideo         EventID = "viral_video"
	EventLostDogReunion     EventID = "lost_dog_reunion"
	EventFridgeMalfunction  EventID = "fridge_malfunction"
	EventGymClassOuting     EventID = "gym_class_outing"
	EventWarmDrinkTrend     EventID = "warm_drink_trend"
	EventNoLemonComplaint   EventID = "no_lemon_complaint"
	EventNoSugarComplaint   EventID = "no_sugar_complaint"
	EventNoIceComplaint     EventID = "no_ice_complaint"
)

func demandRange(lo, hi float64) magnitude {
	return magnitude{Field: EffectDemandMultiplier, Lo: lo, Hi: hi}
}

func costRange(field EffectField, lo, hi float64) magnitude {
	return magnitude{Field: field, Lo: lo, Hi: hi}
}

func intRange(field EffectField, lo, hi int) magnitude {
	return magnitude{Field: field, Lo: float64(lo), Hi: float64(hi), Integer: true}
}

// Planned events are listed first, then surprises, then complaints. Pool
// order follows this slice.
var eventCatalog = []EventDef{
	// Planned: demand swings.
	{
		ID:       EventHeatWave,
		Name:     "Heat Wave",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectDemandMultiplier: 1.4},
		describe: staticText("Scorching temperatures! Everyone wants a cold drink."),
	},
	{
		ID:       EventStreetFair,
		Name:     "Street Fair",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectDemandMultiplier: 1.6},
		describe: staticText("A street fair brings huge crowds to the block!"),
	},
	{
		ID:       EventConstruction,
		Name:     "Construction Nearby",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectDemandMultiplier: 0.7},
		describe: staticText("Road works are driving foot traffic away."),
	},
	{
		ID:       EventSchoolFieldTrip,
		Name:     "School Field Trip",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectDemandMultiplier: 1.25, EffectSugarShift: 2},
		describe: staticText("A school trip is in town. Kids want it sweet!"),
	},
	{
		ID:       EventCompetingStand,
		Name:     "Competing Stand",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectDemandMultiplier: 0.8},
		describe: staticText("A rival stand opened across the street."),
	},

	// Planned: supply price surges.
	{
		ID:       EventLemonShortage,
		Name:     "Lemon Shortage",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectLemonCost, 1.5, 2.0)},
		describe: costUpText("Supply chain trouble! Lemons cost %d%% more today.", EffectLemonCost),
	},
	{
		ID:       EventSugarShortage,
		Name:     "Sugar Shortage",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectSugarCost, 1.4, 1.8)},
		describe: costUpText("Sugar is scarce! Sugar costs %d%% more today.", EffectSugarCost),
	},
	{
		ID:       EventIceTruckDelay,
		Name:     "Ice Truck Delay",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectIceCost, 1.5, 2.0)},
		describe: costUpText("The ice truck broke down! Ice costs %d%% more today.", EffectIceCost),
	},
	{
		ID:       EventCupShortage,
		Name:     "Cup Shortage",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectCupCost, 1.3, 1.6)},
		describe: costUpText("The cup factory is behind! Cups cost %d%% more today.", EffectCupCost),
	},
	{
		ID:       EventCitrusBlight,
		Name:     "Citrus Blight",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectLemonCost, 1.4, 1.7)},
		describe: costUpText("Blight hit the local groves! Lemons cost %d%% more.", EffectLemonCost),
	},

	// Planned: supply discounts.
	{
		ID:       EventLemonGlut,
		Name:     "Lemon Glut",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectLemonCost, 0.65, 0.8)},
		describe: costDownText("Bumper harvest! Lemons are %d%% cheaper today.", EffectLemonCost),
	},
	{
		ID:       EventIceSale,
		Name:     "Ice Sale",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectIceCost, 0.6, 0.75)},
		describe: costDownText("Ice clearance sale! Ice is %d%% cheaper today.", EffectIceCost),
	},
	{
		ID:       EventSugarSurplus,
		Name:     "Sugar Surplus",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectSugarCost, 0.65, 0.8)},
		describe: costDownText("The warehouse is overstocked! Sugar is %d%% cheaper today.", EffectSugarCost),
	},
	{
		ID:       EventCupPromo,
		Name:     "Cup Promo",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{costRange(EffectCupCost, 0.7, 0.85)},
		describe: costDownText("Cup promo! Cups are %d%% cheaper today.", EffectCupCost),
	},

	// Planned: randomized crowds.
	{
		ID:       EventLocalSportsGame,
		Name:     "Local Sports Game",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectSugarShift: -1},
		Randoms:  []magnitude{demandRange(1.2, 1.35)},
		describe: demandUpText("The big game nearby brings %d%% more thirsty fans!"),
	},
	{
		ID:       EventCharityMarathon,
		Name:     "Charity Marathon",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{demandRange(1.15, 1.3)},
		describe: demandUpText("A charity marathon brings %d%% more thirsty runners!"),
	},
	{
		ID:       EventGarageSale,
		Name:     "Garage Sale Day",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{demandRange(1.1, 1.2)},
		describe: demandUpText("Garage sales bring %d%% more foot traffic."),
	},
	{
		ID:       EventLemonadeDay,
		Name:     "National Lemonade Day",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{demandRange(1.25, 1.35)},
		describe: demandUpText("It's National Lemonade Day! %d%% more demand!"),
	},
	{
		ID:       EventRivalClosed,
		Name:     "Rival Closed Today",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{demandRange(1.1, 1.2)},
		describe: demandUpText("The rival stand is closed! %d%% more customers for you."),
	},
	{
		ID:       EventParkConcert,
		Name:     "Park Concert",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{demandRange(1.15, 1.25)},
		describe: demandUpText("Concert in the park! %d%% more visitors."),
	},
	{
		ID:       EventRoadClosure,
		Name:     "Road Closure",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{demandRange(0.8, 0.9)},
		describe: demandDownText("A detour is in place. %d%% fewer pedestrians."),
	},

	// Planned: taste preferences.
	{
		ID:       EventVappuPicnic,
		Name:     "Vappu Picnic",
		Timing:   TimingPlanned,
		Randoms:  []magnitude{demandRange(1.1, 1.15), intRange(EffectSugarShift, 1, 2)},
		describe: staticText("It's Vappu! Families want their lemonade sweeter."),
	},
	{
		ID:       EventDietTrend,
		Name:     "Diet Trend Article",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectSugarShift: -1},
		Randoms:  []magnitude{demandRange(1.05, 1.1)},
		describe: staticText("A diet article boosts demand, but people want less sugar."),
	},
	{
		ID:       EventHealthCraze,
		Name:     "Health Craze",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectSugarShift: -2, EffectZeroSugarOK: 1},
		Randoms:  []magnitude{demandRange(1.1, 1.2)},
		describe: staticText("A health craze is sweeping the city! Sugar-free drinks are all the rage."),
	},
	{
		ID:       EventCitrusAllergyScare,
		Name:     "Citrus Allergy Scare",
		Timing:   TimingPlanned,
		Base:     EffectBundle{EffectZeroLemonsOK: 1},
		Randoms:  []magnitude{demandRange(1.05, 1.15)},
		describe: staticText("A citrus allergy scare is in the news. Lemon-free is the safe choice."),
	},

	// Surprises.
	{
		ID:       EventHealthInspector,
		Name:     "Health Inspector",
		Timing:   TimingSurprise,
		describe: staticText("The health inspector is visiting! Happy customers earn a good report."),
	},
	{
		ID:       EventNewspaperFeature,
		Name:     "Newspaper Feature",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectDemandMultiplier: 1.2, EffectReputationDelta: 3},
		describe: staticText("Your stand made the local paper!"),
	},
	{
		ID:       EventPowerOutage,
		Name:     "Power Outage",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectDestroysIce: 1},
		describe: staticText("A power outage overnight melted all your ice!"),
	},
	{
		ID:       EventCelebritySighting,
		Name:     "Celebrity Sighting",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectDemandMultiplier: 1.8, EffectReputationDelta: 5},
		describe: staticText("A celebrity was spotted near your stand! Huge crowds!"),
	},
	{
		ID:       EventSurpriseRain,
		Name:     "Surprise Rain",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectDemandMultiplier: 0.65},
		describe: staticText("The forecast was wrong. Unexpected rain today."),
	},
	{
		ID:       EventTouristBus,
		Name:     "Tourist Bus",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{demandRange(1.1, 1.25)},
		describe: demandUpText("A tour bus just pulled up! %d%% more customers."),
	},
	{
		ID:       EventWaterMainBreak,
		Name:     "Water Main Break",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{demandRange(0.8, 0.9)},
		describe: demandDownText("A water main broke nearby. %d%% fewer people around."),
	},
	{
		ID:       EventBeeSighting,
		Name:     "Bee Sighting",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{demandRange(0.85, 0.9)},
		describe: demandDownText("Bees near the stand! %d%% fewer visitors."),
	},
	{
		ID:       EventParkingLotClosed,
		Name:     "Parking Lot Closed",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{demandRange(0.85, 0.92)},
		describe: demandDownText("The nearby parking lot closed. %d%% less foot traffic."),
	},
	{
		ID:       EventHeatBurst,
		Name:     "Overnight Heat Burst",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectDestroysIce: 1},
		Randoms:  []magnitude{demandRange(1.15, 1.25)},
		describe: demandUpText("A heat burst melted your ice overnight, but demand is up %d%%!"),
	},
	{
		ID:       EventFoodBlogReview,
		Name:     "Food Blog Review",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectReputationDelta: 2},
		Randoms:  []magnitude{demandRange(1.05, 1.15)},
		describe: staticText("A food blogger just featured your stand!"),
	},
	{
		ID:       EventBadOnlineReview,
		Name:     "Bad Online Review",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{demandRange(0.9, 0.95), intRange(EffectReputationDelta, -3, -2)},
		describe: staticText("Someone left a harsh one-star review online."),
	},
	{
		ID:       EventViralVideo,
		Name:     "Viral Video",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{demandRange(1.1, 1.2), intRange(EffectReputationDelta, 3, 4)},
		describe: demandUpText("Your stand went viral! %d%% more demand."),
	},
	{
		ID:       EventLostDogReunion,
		Name:     "Lost Dog Reunion",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{intRange(EffectReputationDelta, 2, 3)},
		describe: staticText("A lost dog found its owner at your stand. Heartwarming press!"),
	},
	{
		ID:       EventFridgeMalfunction,
		Name:     "Fridge Malfunction",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectDestroysIce: 1},
		describe: staticText("Your fridge broke overnight. All the ice melted."),
	},
	{
		ID:       EventGymClassOuting,
		Name:     "Gym Class Outing",
		Timing:   TimingSurprise,
		Randoms:  []magnitude{intRange(EffectSugarShift, -2, -1)},
		describe: staticText("A gym class stopped by. They want less sugar."),
	},
	{
		ID:       EventWarmDrinkTrend,
		Name:     "Warm Drinks Trending",
		Timing:   TimingSurprise,
		Base:     EffectBundle{EffectZeroIceOK: 1},
		Randoms:  []magnitude{demandRange(1.05, 1.15)},
		describe: staticText("Warm drinks are trending online. Ice-free is the new thing."),
	},

	// Complaints, synthesized from the recipe only.
	{
		ID:       EventNoLemonComplaint,
		Name:     "Where's the Lemon?!",
		Timing:   TimingComplaint,
		Base:     EffectBundle{EffectDemandMultiplier: 0.7, EffectReputationDelta: -5},
		describe: staticText("Customers are furious. It isn't lemonade without lemons!"),
	},
	{
		ID:       EventNoSugarComplaint,
		Name:     "Too Sour!",
		Timing:   TimingComplaint,
		Base:     EffectBundle{EffectDemandMultiplier: 0.85, EffectReputationDelta: -3},
		describe: staticText("Customers grimace. Way too sour without sugar!"),
	},
	{
		ID:       EventNoIceComplaint,
		Name:     "It's Warm!",
		Timing:   TimingComplaint,
		Base:     EffectBundle{EffectDemandMultiplier: 0.9, EffectReputationDelta: -2},
		describe: staticText("Customers complain their drinks are lukewarm. Where's the ice?"),
	},
}
