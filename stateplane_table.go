package gctp

// State Plane zone tables for the NAD27 and NAD83 datums, from the
// published NOS/NGS zone constants.  Angles are packed two-digit DMS
// ((sign)DDDMMSS.SSS); false origins are meters, with the NAD27 US survey
// foot values converted at 1200/3937 meters per foot.

// NAD27 false origins in US survey feet, converted to meters.
const (
	spcsFeet100k = 30480.06096012192
	spcsFeet200k = 60960.12192024384
	spcsFeet500k = 152400.3048006096
	spcsFeet600k = 182880.3657607315
	spcsFeet800k = 243840.4876809754
	spcsFeet2M   = 609601.2192024384
	spcsFeet3M   = 914401.8288036576
)

var nad27Zones = []statePlaneZone{
	{101, spcsTransverseMercator, [9]float64{0, 0, -855000.0, 0.99996, 0, 0, 303000.0, spcsFeet500k, 0}, "Alabama East"},
	{102, spcsTransverseMercator, [9]float64{0, 0, -873000.0, 0.999933333, 0, 0, 300000.0, spcsFeet500k, 0}, "Alabama West"},
	{5001, spcsObliqueMercator, [9]float64{0, 0, -1334000.0, 0.9999, 0, 0, 570000.0, 5000000.0, -5000000.0}, "Alaska Zone 1"},
	{5002, spcsTransverseMercator, [9]float64{0, 0, -1420000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 2"},
	{5003, spcsTransverseMercator, [9]float64{0, 0, -1460000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 3"},
	{5004, spcsTransverseMercator, [9]float64{0, 0, -1500000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 4"},
	{5005, spcsTransverseMercator, [9]float64{0, 0, -1540000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 5"},
	{5006, spcsTransverseMercator, [9]float64{0, 0, -1580000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 6"},
	{5007, spcsTransverseMercator, [9]float64{0, 0, -1620000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 7"},
	{5008, spcsTransverseMercator, [9]float64{0, 0, -1660000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 8"},
	{5009, spcsTransverseMercator, [9]float64{0, 0, -1700000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 9"},
	{5010, spcsLambert, [9]float64{0, 0, -1760000.0, 0, 515000.0, 535000.0, 510000.0, spcsFeet3M, 0}, "Alaska Zone 10"},
	{201, spcsTransverseMercator, [9]float64{0, 0, -1101000.0, 0.9999, 0, 0, 310000.0, spcsFeet500k, 0}, "Arizona East"},
	{202, spcsTransverseMercator, [9]float64{0, 0, -1115500.0, 0.9999, 0, 0, 310000.0, spcsFeet500k, 0}, "Arizona Central"},
	{203, spcsTransverseMercator, [9]float64{0, 0, -1134500.0, 0.999933333, 0, 0, 310000.0, spcsFeet500k, 0}, "Arizona West"},
	{301, spcsLambert, [9]float64{0, 0, -920000.0, 0, 345600.0, 361400.0, 342000.0, spcsFeet2M, 0}, "Arkansas North"},
	{302, spcsLambert, [9]float64{0, 0, -920000.0, 0, 331800.0, 344600.0, 324000.0, spcsFeet2M, 0}, "Arkansas South"},
	{401, spcsLambert, [9]float64{0, 0, -1220000.0, 0, 400000.0, 414000.0, 392000.0, spcsFeet2M, 0}, "California I"},
	{402, spcsLambert, [9]float64{0, 0, -1220000.0, 0, 382000.0, 395000.0, 374000.0, spcsFeet2M, 0}, "California II"},
	{403, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 370400.0, 382600.0, 363000.0, spcsFeet2M, 0}, "California III"},
	{404, spcsLambert, [9]float64{0, 0, -1190000.0, 0, 360000.0, 371500.0, 352000.0, spcsFeet2M, 0}, "California IV"},
	{405, spcsLambert, [9]float64{0, 0, -1180000.0, 0, 340200.0, 352800.0, 333000.0, spcsFeet2M, 0}, "California V"},
	{406, spcsLambert, [9]float64{0, 0, -1161500.0, 0, 324700.0, 335300.0, 321000.0, spcsFeet2M, 0}, "California VI"},
	{407, spcsLambert, [9]float64{0, 0, -1182000.0, 0, 335200.0, 342500.0, 340800.0, 1276106.451, 1268253.007}, "California VII"},
	{501, spcsLambert, [9]float64{0, 0, -1053000.0, 0, 394300.0, 404700.0, 392000.0, spcsFeet2M, 0}, "Colorado North"},
	{502, spcsLambert, [9]float64{0, 0, -1053000.0, 0, 382700.0, 394500.0, 375000.0, spcsFeet2M, 0}, "Colorado Central"},
	{503, spcsLambert, [9]float64{0, 0, -1053000.0, 0, 371400.0, 382600.0, 364000.0, spcsFeet2M, 0}, "Colorado South"},
	{600, spcsLambert, [9]float64{0, 0, -724500.0, 0, 411200.0, 415200.0, 405000.0, spcsFeet600k, 0}, "Connecticut"},
	{700, spcsTransverseMercator, [9]float64{0, 0, -752500.0, 0.999995, 0, 0, 380000.0, spcsFeet500k, 0}, "Delaware"},
	{901, spcsTransverseMercator, [9]float64{0, 0, -810000.0, 0.999941177, 0, 0, 242000.0, spcsFeet500k, 0}, "Florida East"},
	{902, spcsTransverseMercator, [9]float64{0, 0, -820000.0, 0.999941177, 0, 0, 242000.0, spcsFeet500k, 0}, "Florida West"},
	{903, spcsLambert, [9]float64{0, 0, -843000.0, 0, 293500.0, 304500.0, 290000.0, spcsFeet2M, 0}, "Florida North"},
	{1001, spcsTransverseMercator, [9]float64{0, 0, -821000.0, 0.9999, 0, 0, 300000.0, spcsFeet500k, 0}, "Georgia East"},
	{1002, spcsTransverseMercator, [9]float64{0, 0, -841000.0, 0.9999, 0, 0, 300000.0, spcsFeet500k, 0}, "Georgia West"},
	{5101, spcsTransverseMercator, [9]float64{0, 0, -1553000.0, 0.999966667, 0, 0, 185000.0, spcsFeet500k, 0}, "Hawaii 1"},
	{5102, spcsTransverseMercator, [9]float64{0, 0, -1564000.0, 0.999966667, 0, 0, 202000.0, spcsFeet500k, 0}, "Hawaii 2"},
	{5103, spcsTransverseMercator, [9]float64{0, 0, -1580000.0, 0.99999, 0, 0, 211000.0, spcsFeet500k, 0}, "Hawaii 3"},
	{5104, spcsTransverseMercator, [9]float64{0, 0, -1593000.0, 0.99999, 0, 0, 215000.0, spcsFeet500k, 0}, "Hawaii 4"},
	{5105, spcsTransverseMercator, [9]float64{0, 0, -1601000.0, 1.0, 0, 0, 214000.0, spcsFeet500k, 0}, "Hawaii 5"},
	{1101, spcsTransverseMercator, [9]float64{0, 0, -1121000.0, 0.999947368, 0, 0, 414000.0, spcsFeet500k, 0}, "Idaho East"},
	{1102, spcsTransverseMercator, [9]float64{0, 0, -1140000.0, 0.999947368, 0, 0, 414000.0, spcsFeet500k, 0}, "Idaho Central"},
	{1103, spcsTransverseMercator, [9]float64{0, 0, -1154500.0, 0.999933333, 0, 0, 414000.0, spcsFeet500k, 0}, "Idaho West"},
	{1201, spcsTransverseMercator, [9]float64{0, 0, -882000.0, 0.999975, 0, 0, 364000.0, spcsFeet500k, 0}, "Illinois East"},
	{1202, spcsTransverseMercator, [9]float64{0, 0, -901000.0, 0.999941177, 0, 0, 364000.0, spcsFeet500k, 0}, "Illinois West"},
	{1301, spcsTransverseMercator, [9]float64{0, 0, -854000.0, 0.999966667, 0, 0, 373000.0, spcsFeet500k, 0}, "Indiana East"},
	{1302, spcsTransverseMercator, [9]float64{0, 0, -870500.0, 0.999966667, 0, 0, 373000.0, spcsFeet500k, 0}, "Indiana West"},
	{1401, spcsLambert, [9]float64{0, 0, -933000.0, 0, 420400.0, 431600.0, 413000.0, spcsFeet2M, 0}, "Iowa North"},
	{1402, spcsLambert, [9]float64{0, 0, -933000.0, 0, 403700.0, 414700.0, 400000.0, spcsFeet2M, 0}, "Iowa South"},
	{1501, spcsLambert, [9]float64{0, 0, -980000.0, 0, 384300.0, 394700.0, 382000.0, spcsFeet2M, 0}, "Kansas North"},
	{1502, spcsLambert, [9]float64{0, 0, -983000.0, 0, 371600.0, 383400.0, 364000.0, spcsFeet2M, 0}, "Kansas South"},
	{1601, spcsLambert, [9]float64{0, 0, -841500.0, 0, 375800.0, 385800.0, 373000.0, spcsFeet2M, 0}, "Kentucky North"},
	{1602, spcsLambert, [9]float64{0, 0, -854500.0, 0, 364400.0, 375600.0, 362000.0, spcsFeet2M, 0}, "Kentucky South"},
	{1701, spcsLambert, [9]float64{0, 0, -923000.0, 0, 311000.0, 324000.0, 303000.0, spcsFeet2M, 0}, "Louisiana North"},
	{1702, spcsLambert, [9]float64{0, 0, -912000.0, 0, 291800.0, 304200.0, 283000.0, spcsFeet2M, 0}, "Louisiana South"},
	{1703, spcsLambert, [9]float64{0, 0, -912000.0, 0, 261000.0, 275000.0, 253000.0, spcsFeet2M, 0}, "Louisiana Offshore"},
	{1801, spcsTransverseMercator, [9]float64{0, 0, -683000.0, 0.9999, 0, 0, 435000.0, spcsFeet500k, 0}, "Maine East"},
	{1802, spcsTransverseMercator, [9]float64{0, 0, -701000.0, 0.999966667, 0, 0, 425000.0, spcsFeet500k, 0}, "Maine West"},
	{1900, spcsLambert, [9]float64{0, 0, -770000.0, 0, 381800.0, 392700.0, 375000.0, spcsFeet800k, 0}, "Maryland"},
	{2001, spcsLambert, [9]float64{0, 0, -713000.0, 0, 414300.0, 424100.0, 410000.0, spcsFeet600k, 0}, "Massachusetts Mainland"},
	{2002, spcsLambert, [9]float64{0, 0, -703000.0, 0, 411700.0, 412900.0, 410000.0, spcsFeet200k, 0}, "Massachusetts Island"},
	{2101, spcsTransverseMercator, [9]float64{0, 0, -834000.0, 0.999942857, 0, 0, 413000.0, spcsFeet500k, 0}, "Michigan East"},
	{2102, spcsTransverseMercator, [9]float64{0, 0, -854500.0, 0.999909091, 0, 0, 413000.0, spcsFeet500k, 0}, "Michigan Central/M"},
	{2103, spcsTransverseMercator, [9]float64{0, 0, -884500.0, 0.999909091, 0, 0, 413000.0, spcsFeet500k, 0}, "Michigan West"},
	{2111, spcsLambert, [9]float64{0, 0, -870000.0, 0, 452900.0, 470500.0, 444700.0, spcsFeet2M, 0}, "Michigan North"},
	{2112, spcsLambert, [9]float64{0, 0, -842000.0, 0, 441100.0, 454200.0, 431900.0, spcsFeet2M, 0}, "Michigan Central/L"},
	{2113, spcsLambert, [9]float64{0, 0, -842000.0, 0, 420600.0, 434000.0, 413000.0, spcsFeet2M, 0}, "Michigan South"},
	{2201, spcsLambert, [9]float64{0, 0, -930600.0, 0, 470200.0, 483800.0, 463000.0, spcsFeet2M, 0}, "Minnesota North"},
	{2202, spcsLambert, [9]float64{0, 0, -941500.0, 0, 453700.0, 470300.0, 450000.0, spcsFeet2M, 0}, "Minnesota Central"},
	{2203, spcsLambert, [9]float64{0, 0, -940000.0, 0, 434700.0, 451300.0, 430000.0, spcsFeet2M, 0}, "Minnesota South"},
	{2301, spcsTransverseMercator, [9]float64{0, 0, -885000.0, 0.99996, 0, 0, 294000.0, spcsFeet500k, 0}, "Mississippi East"},
	{2302, spcsTransverseMercator, [9]float64{0, 0, -901200.0, 0.999941177, 0, 0, 303000.0, spcsFeet500k, 0}, "Mississippi West"},
	{2401, spcsTransverseMercator, [9]float64{0, 0, -903000.0, 0.999933333, 0, 0, 355000.0, spcsFeet500k, 0}, "Missouri East"},
	{2402, spcsTransverseMercator, [9]float64{0, 0, -923000.0, 0.999933333, 0, 0, 355000.0, spcsFeet500k, 0}, "Missouri Central"},
	{2403, spcsTransverseMercator, [9]float64{0, 0, -943000.0, 0.999941177, 0, 0, 361000.0, spcsFeet500k, 0}, "Missouri West"},
	{2501, spcsLambert, [9]float64{0, 0, -1093000.0, 0, 475100.0, 484300.0, 470000.0, spcsFeet2M, 0}, "Montana North"},
	{2502, spcsLambert, [9]float64{0, 0, -1093000.0, 0, 462700.0, 475300.0, 455000.0, spcsFeet2M, 0}, "Montana Central"},
	{2503, spcsLambert, [9]float64{0, 0, -1093000.0, 0, 445200.0, 462400.0, 440000.0, spcsFeet2M, 0}, "Montana South"},
	{2601, spcsLambert, [9]float64{0, 0, -1000000.0, 0, 415100.0, 424900.0, 412000.0, spcsFeet2M, 0}, "Nebraska North"},
	{2602, spcsLambert, [9]float64{0, 0, -993000.0, 0, 401700.0, 414300.0, 394000.0, spcsFeet2M, 0}, "Nebraska South"},
	{2701, spcsTransverseMercator, [9]float64{0, 0, -1153500.0, 0.9999, 0, 0, 344500.0, spcsFeet500k, 0}, "Nevada East"},
	{2702, spcsTransverseMercator, [9]float64{0, 0, -1164000.0, 0.9999, 0, 0, 344500.0, spcsFeet500k, 0}, "Nevada Central"},
	{2703, spcsTransverseMercator, [9]float64{0, 0, -1183500.0, 0.9999, 0, 0, 344500.0, spcsFeet500k, 0}, "Nevada West"},
	{2800, spcsTransverseMercator, [9]float64{0, 0, -714000.0, 0.999966667, 0, 0, 423000.0, spcsFeet500k, 0}, "New Hampshire"},
	{2900, spcsTransverseMercator, [9]float64{0, 0, -744000.0, 0.999975, 0, 0, 385000.0, spcsFeet2M, 0}, "New Jersey"},
	{3001, spcsTransverseMercator, [9]float64{0, 0, -1042000.0, 0.999909091, 0, 0, 310000.0, spcsFeet500k, 0}, "New Mexico East"},
	{3002, spcsTransverseMercator, [9]float64{0, 0, -1061500.0, 0.9999, 0, 0, 310000.0, spcsFeet500k, 0}, "New Mexico Central"},
	{3003, spcsTransverseMercator, [9]float64{0, 0, -1075000.0, 0.999916667, 0, 0, 310000.0, spcsFeet500k, 0}, "New Mexico West"},
	{3101, spcsTransverseMercator, [9]float64{0, 0, -742000.0, 0.999966667, 0, 0, 400000.0, spcsFeet500k, 0}, "New York East"},
	{3102, spcsTransverseMercator, [9]float64{0, 0, -763500.0, 0.9999375, 0, 0, 400000.0, spcsFeet500k, 0}, "New York Central"},
	{3103, spcsTransverseMercator, [9]float64{0, 0, -783500.0, 0.9999375, 0, 0, 400000.0, spcsFeet500k, 0}, "New York West"},
	{3104, spcsLambert, [9]float64{0, 0, -740000.0, 0, 404000.0, 410200.0, 403000.0, spcsFeet2M, spcsFeet100k}, "New York Long Island"},
	{3200, spcsLambert, [9]float64{0, 0, -790000.0, 0, 342000.0, 361000.0, 334500.0, spcsFeet2M, 0}, "North Carolina"},
	{3301, spcsLambert, [9]float64{0, 0, -1003000.0, 0, 472600.0, 484400.0, 470000.0, spcsFeet2M, 0}, "North Dakota North"},
	{3302, spcsLambert, [9]float64{0, 0, -1003000.0, 0, 461100.0, 472900.0, 454000.0, spcsFeet2M, 0}, "North Dakota South"},
	{3401, spcsLambert, [9]float64{0, 0, -823000.0, 0, 402600.0, 414200.0, 394000.0, spcsFeet2M, 0}, "Ohio North"},
	{3402, spcsLambert, [9]float64{0, 0, -823000.0, 0, 384400.0, 400200.0, 380000.0, spcsFeet2M, 0}, "Ohio South"},
	{3501, spcsLambert, [9]float64{0, 0, -980000.0, 0, 353400.0, 364600.0, 350000.0, spcsFeet2M, 0}, "Oklahoma North"},
	{3502, spcsLambert, [9]float64{0, 0, -980000.0, 0, 335600.0, 351400.0, 332000.0, spcsFeet2M, 0}, "Oklahoma South"},
	{3601, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 442000.0, 460000.0, 434000.0, spcsFeet2M, 0}, "Oregon North"},
	{3602, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 422000.0, 440000.0, 414000.0, spcsFeet2M, 0}, "Oregon South"},
	{3701, spcsLambert, [9]float64{0, 0, -774500.0, 0, 405300.0, 415700.0, 401000.0, spcsFeet2M, 0}, "Pennsylvania North"},
	{3702, spcsLambert, [9]float64{0, 0, -774500.0, 0, 395600.0, 405800.0, 392000.0, spcsFeet2M, 0}, "Pennsylvania South"},
	{3800, spcsTransverseMercator, [9]float64{0, 0, -713000.0, 0.99999375, 0, 0, 410500.0, spcsFeet500k, 0}, "Rhode Island"},
	{3901, spcsLambert, [9]float64{0, 0, -810000.0, 0, 334600.0, 345800.0, 330000.0, spcsFeet2M, 0}, "South Carolina North"},
	{3902, spcsLambert, [9]float64{0, 0, -810000.0, 0, 322000.0, 334000.0, 315000.0, spcsFeet2M, 0}, "South Carolina South"},
	{4001, spcsLambert, [9]float64{0, 0, -1000000.0, 0, 442500.0, 454100.0, 435000.0, spcsFeet2M, 0}, "South Dakota North"},
	{4002, spcsLambert, [9]float64{0, 0, -1002000.0, 0, 425000.0, 442400.0, 422000.0, spcsFeet2M, 0}, "South Dakota South"},
	{4100, spcsLambert, [9]float64{0, 0, -860000.0, 0, 351500.0, 362500.0, 344000.0, spcsFeet2M, spcsFeet100k}, "Tennessee"},
	{4201, spcsLambert, [9]float64{0, 0, -1013000.0, 0, 343900.0, 361100.0, 340000.0, spcsFeet2M, 0}, "Texas North"},
	{4202, spcsLambert, [9]float64{0, 0, -973000.0, 0, 320800.0, 335800.0, 314000.0, spcsFeet2M, 0}, "Texas North Central"},
	{4203, spcsLambert, [9]float64{0, 0, -1002000.0, 0, 300700.0, 315300.0, 294000.0, spcsFeet2M, 0}, "Texas Central"},
	{4204, spcsLambert, [9]float64{0, 0, -990000.0, 0, 282300.0, 301700.0, 275000.0, spcsFeet2M, 0}, "Texas South Central"},
	{4205, spcsLambert, [9]float64{0, 0, -983000.0, 0, 261000.0, 275000.0, 254000.0, spcsFeet2M, 0}, "Texas South"},
	{4301, spcsLambert, [9]float64{0, 0, -1113000.0, 0, 404300.0, 414700.0, 402000.0, spcsFeet2M, 0}, "Utah North"},
	{4302, spcsLambert, [9]float64{0, 0, -1113000.0, 0, 390100.0, 403900.0, 382000.0, spcsFeet2M, 0}, "Utah Central"},
	{4303, spcsLambert, [9]float64{0, 0, -1113000.0, 0, 371300.0, 382100.0, 364000.0, spcsFeet2M, 0}, "Utah South"},
	{4400, spcsTransverseMercator, [9]float64{0, 0, -723000.0, 0.999964286, 0, 0, 423000.0, spcsFeet500k, 0}, "Vermont"},
	{4501, spcsLambert, [9]float64{0, 0, -783000.0, 0, 380200.0, 391200.0, 374000.0, spcsFeet2M, 0}, "Virginia North"},
	{4502, spcsLambert, [9]float64{0, 0, -783000.0, 0, 364600.0, 375800.0, 362000.0, spcsFeet2M, 0}, "Virginia South"},
	{4601, spcsLambert, [9]float64{0, 0, -1205000.0, 0, 473000.0, 484400.0, 470000.0, spcsFeet2M, 0}, "Washington North"},
	{4602, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 455000.0, 472000.0, 452000.0, spcsFeet2M, 0}, "Washington South"},
	{4701, spcsLambert, [9]float64{0, 0, -793000.0, 0, 390000.0, 401500.0, 383000.0, spcsFeet2M, 0}, "West Virginia North"},
	{4702, spcsLambert, [9]float64{0, 0, -810000.0, 0, 372900.0, 385300.0, 370000.0, spcsFeet2M, 0}, "West Virginia South"},
	{4801, spcsLambert, [9]float64{0, 0, -900000.0, 0, 453400.0, 464600.0, 451000.0, spcsFeet2M, 0}, "Wisconsin North"},
	{4802, spcsLambert, [9]float64{0, 0, -900000.0, 0, 441500.0, 453000.0, 435000.0, spcsFeet2M, 0}, "Wisconsin Central"},
	{4803, spcsLambert, [9]float64{0, 0, -900000.0, 0, 424400.0, 440400.0, 420000.0, spcsFeet2M, 0}, "Wisconsin South"},
	{4901, spcsTransverseMercator, [9]float64{0, 0, -1051000.0, 0.999941177, 0, 0, 404000.0, spcsFeet500k, 0}, "Wyoming East"},
	{4902, spcsTransverseMercator, [9]float64{0, 0, -1072000.0, 0.999941177, 0, 0, 404000.0, spcsFeet500k, 0}, "Wyoming East Central"},
	{4903, spcsTransverseMercator, [9]float64{0, 0, -1084500.0, 0.999941177, 0, 0, 404000.0, spcsFeet500k, 0}, "Wyoming West Central"},
	{4904, spcsTransverseMercator, [9]float64{0, 0, -1100500.0, 0.999941177, 0, 0, 404000.0, spcsFeet500k, 0}, "Wyoming West"},
	{5201, spcsLambert, [9]float64{0, 0, -662600.0, 0, 180200.0, 182600.0, 175000.0, spcsFeet500k, 0}, "Puerto Rico"},
	{5202, spcsLambert, [9]float64{0, 0, -662600.0, 0, 180200.0, 182600.0, 175000.0, spcsFeet500k, spcsFeet100k}, "St. Croix"},
	{5300, spcsLambert, [9]float64{0, 0, -1700000.0, 0, -141600.0, -141600.0, -141600.0, spcsFeet500k, 0}, "American Samoa"},
	{5400, spcsPolyconic, [9]float64{0, 0, 1444455.5, 0, 0, 0, 132820.9, 50000.0, 50000.0}, "Guam"},
}

var nad83Zones = []statePlaneZone{
	{101, spcsTransverseMercator, [9]float64{0, 0, -855000.0, 0.99996, 0, 0, 303000.0, 200000.0, 0}, "Alabama East"},
	{102, spcsTransverseMercator, [9]float64{0, 0, -873000.0, 0.999933333, 0, 0, 300000.0, 600000.0, 0}, "Alabama West"},
	{5001, spcsObliqueMercator, [9]float64{0, 0, -1334000.0, 0.9999, 0, 0, 570000.0, 5000000.0, -5000000.0}, "Alaska Zone 1"},
	{5002, spcsTransverseMercator, [9]float64{0, 0, -1420000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 2"},
	{5003, spcsTransverseMercator, [9]float64{0, 0, -1460000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 3"},
	{5004, spcsTransverseMercator, [9]float64{0, 0, -1500000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 4"},
	{5005, spcsTransverseMercator, [9]float64{0, 0, -1540000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 5"},
	{5006, spcsTransverseMercator, [9]float64{0, 0, -1580000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 6"},
	{5007, spcsTransverseMercator, [9]float64{0, 0, -1620000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 7"},
	{5008, spcsTransverseMercator, [9]float64{0, 0, -1660000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 8"},
	{5009, spcsTransverseMercator, [9]float64{0, 0, -1700000.0, 0.9999, 0, 0, 540000.0, 500000.0, 0}, "Alaska Zone 9"},
	{5010, spcsLambert, [9]float64{0, 0, -1760000.0, 0, 515000.0, 535000.0, 510000.0, 1000000.0, 0}, "Alaska Zone 10"},
	{201, spcsTransverseMercator, [9]float64{0, 0, -1101000.0, 0.9999, 0, 0, 310000.0, 213360.0, 0}, "Arizona East"},
	{202, spcsTransverseMercator, [9]float64{0, 0, -1115500.0, 0.9999, 0, 0, 310000.0, 213360.0, 0}, "Arizona Central"},
	{203, spcsTransverseMercator, [9]float64{0, 0, -1134500.0, 0.999933333, 0, 0, 310000.0, 213360.0, 0}, "Arizona West"},
	{301, spcsLambert, [9]float64{0, 0, -920000.0, 0, 345600.0, 361400.0, 342000.0, 400000.0, 0}, "Arkansas North"},
	{302, spcsLambert, [9]float64{0, 0, -920000.0, 0, 331800.0, 344600.0, 324000.0, 400000.0, 400000.0}, "Arkansas South"},
	{401, spcsLambert, [9]float64{0, 0, -1220000.0, 0, 400000.0, 414000.0, 392000.0, 2000000.0, 500000.0}, "California I"},
	{402, spcsLambert, [9]float64{0, 0, -1220000.0, 0, 382000.0, 395000.0, 374000.0, 2000000.0, 500000.0}, "California II"},
	{403, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 370400.0, 382600.0, 363000.0, 2000000.0, 500000.0}, "California III"},
	{404, spcsLambert, [9]float64{0, 0, -1190000.0, 0, 360000.0, 371500.0, 352000.0, 2000000.0, 500000.0}, "California IV"},
	{405, spcsLambert, [9]float64{0, 0, -1180000.0, 0, 340200.0, 352800.0, 333000.0, 2000000.0, 500000.0}, "California V"},
	{406, spcsLambert, [9]float64{0, 0, -1161500.0, 0, 324700.0, 335300.0, 321000.0, 2000000.0, 500000.0}, "California VI"},
	{0, spcsUndefined, [9]float64{}, ""},
	{501, spcsLambert, [9]float64{0, 0, -1053000.0, 0, 394300.0, 404700.0, 392000.0, 914401.8289, 304800.6096}, "Colorado North"},
	{502, spcsLambert, [9]float64{0, 0, -1053000.0, 0, 382700.0, 394500.0, 375000.0, 914401.8289, 304800.6096}, "Colorado Central"},
	{503, spcsLambert, [9]float64{0, 0, -1053000.0, 0, 371400.0, 382600.0, 364000.0, 914401.8289, 304800.6096}, "Colorado South"},
	{600, spcsLambert, [9]float64{0, 0, -724500.0, 0, 411200.0, 415200.0, 405000.0, 304800.6096, 152400.3048}, "Connecticut"},
	{700, spcsTransverseMercator, [9]float64{0, 0, -752500.0, 0.999995, 0, 0, 380000.0, 200000.0, 0}, "Delaware"},
	{901, spcsTransverseMercator, [9]float64{0, 0, -810000.0, 0.999941177, 0, 0, 242000.0, 200000.0, 0}, "Florida East"},
	{902, spcsTransverseMercator, [9]float64{0, 0, -820000.0, 0.999941177, 0, 0, 242000.0, 200000.0, 0}, "Florida West"},
	{903, spcsLambert, [9]float64{0, 0, -843000.0, 0, 293500.0, 304500.0, 290000.0, 600000.0, 0}, "Florida North"},
	{1001, spcsTransverseMercator, [9]float64{0, 0, -821000.0, 0.9999, 0, 0, 300000.0, 200000.0, 0}, "Georgia East"},
	{1002, spcsTransverseMercator, [9]float64{0, 0, -841000.0, 0.9999, 0, 0, 300000.0, 700000.0, 0}, "Georgia West"},
	{5101, spcsTransverseMercator, [9]float64{0, 0, -1553000.0, 0.999966667, 0, 0, 185000.0, 500000.0, 0}, "Hawaii 1"},
	{5102, spcsTransverseMercator, [9]float64{0, 0, -1564000.0, 0.999966667, 0, 0, 202000.0, 500000.0, 0}, "Hawaii 2"},
	{5103, spcsTransverseMercator, [9]float64{0, 0, -1580000.0, 0.99999, 0, 0, 211000.0, 500000.0, 0}, "Hawaii 3"},
	{5104, spcsTransverseMercator, [9]float64{0, 0, -1593000.0, 0.99999, 0, 0, 215000.0, 500000.0, 0}, "Hawaii 4"},
	{5105, spcsTransverseMercator, [9]float64{0, 0, -1601000.0, 1.0, 0, 0, 214000.0, 500000.0, 0}, "Hawaii 5"},
	{1101, spcsTransverseMercator, [9]float64{0, 0, -1121000.0, 0.999947368, 0, 0, 414000.0, 200000.0, 0}, "Idaho East"},
	{1102, spcsTransverseMercator, [9]float64{0, 0, -1140000.0, 0.999947368, 0, 0, 414000.0, 500000.0, 0}, "Idaho Central"},
	{1103, spcsTransverseMercator, [9]float64{0, 0, -1154500.0, 0.999933333, 0, 0, 414000.0, 800000.0, 0}, "Idaho West"},
	{1201, spcsTransverseMercator, [9]float64{0, 0, -882000.0, 0.999975, 0, 0, 364000.0, 300000.0, 0}, "Illinois East"},
	{1202, spcsTransverseMercator, [9]float64{0, 0, -901000.0, 0.999941177, 0, 0, 364000.0, 700000.0, 0}, "Illinois West"},
	{1301, spcsTransverseMercator, [9]float64{0, 0, -854000.0, 0.999966667, 0, 0, 373000.0, 100000.0, 250000.0}, "Indiana East"},
	{1302, spcsTransverseMercator, [9]float64{0, 0, -870500.0, 0.999966667, 0, 0, 373000.0, 900000.0, 250000.0}, "Indiana West"},
	{1401, spcsLambert, [9]float64{0, 0, -933000.0, 0, 420400.0, 431600.0, 413000.0, 1500000.0, 1000000.0}, "Iowa North"},
	{1402, spcsLambert, [9]float64{0, 0, -933000.0, 0, 403700.0, 414700.0, 400000.0, 500000.0, 0}, "Iowa South"},
	{1501, spcsLambert, [9]float64{0, 0, -980000.0, 0, 384300.0, 394700.0, 382000.0, 400000.0, 0}, "Kansas North"},
	{1502, spcsLambert, [9]float64{0, 0, -983000.0, 0, 371600.0, 383400.0, 364000.0, 400000.0, 400000.0}, "Kansas South"},
	{1601, spcsLambert, [9]float64{0, 0, -841500.0, 0, 375800.0, 385800.0, 373000.0, 500000.0, 0}, "Kentucky North"},
	{1602, spcsLambert, [9]float64{0, 0, -854500.0, 0, 364400.0, 375600.0, 362000.0, 500000.0, 500000.0}, "Kentucky South"},
	{1701, spcsLambert, [9]float64{0, 0, -923000.0, 0, 311000.0, 324000.0, 303000.0, 1000000.0, 0}, "Louisiana North"},
	{1702, spcsLambert, [9]float64{0, 0, -912000.0, 0, 291800.0, 304200.0, 283000.0, 1000000.0, 0}, "Louisiana South"},
	{1703, spcsLambert, [9]float64{0, 0, -912000.0, 0, 261000.0, 275000.0, 253000.0, 1000000.0, 0}, "Louisiana Offshore"},
	{1801, spcsTransverseMercator, [9]float64{0, 0, -683000.0, 0.9999, 0, 0, 434000.0, 300000.0, 0}, "Maine East"},
	{1802, spcsTransverseMercator, [9]float64{0, 0, -701000.0, 0.999966667, 0, 0, 425000.0, 900000.0, 0}, "Maine West"},
	{1900, spcsLambert, [9]float64{0, 0, -770000.0, 0, 381800.0, 392700.0, 374000.0, 400000.0, 0}, "Maryland"},
	{2001, spcsLambert, [9]float64{0, 0, -713000.0, 0, 414300.0, 424100.0, 410000.0, 200000.0, 750000.0}, "Massachusetts Mainland"},
	{2002, spcsLambert, [9]float64{0, 0, -703000.0, 0, 411700.0, 412900.0, 410000.0, 500000.0, 0}, "Massachusetts Island"},
	{0, spcsUndefined, [9]float64{}, ""},
	{0, spcsUndefined, [9]float64{}, ""},
	{0, spcsUndefined, [9]float64{}, ""},
	{2111, spcsLambert, [9]float64{0, 0, -870000.0, 0, 452900.0, 470500.0, 444700.0, 8000000.0, 0}, "Michigan North"},
	{2112, spcsLambert, [9]float64{0, 0, -842200.0, 0, 441100.0, 454200.0, 431900.0, 6000000.0, 0}, "Michigan Central"},
	{2113, spcsLambert, [9]float64{0, 0, -842200.0, 0, 420600.0, 434000.0, 413000.0, 4000000.0, 0}, "Michigan South"},
	{2201, spcsLambert, [9]float64{0, 0, -930600.0, 0, 470200.0, 483800.0, 463000.0, 800000.0, 100000.0}, "Minnesota North"},
	{2202, spcsLambert, [9]float64{0, 0, -941500.0, 0, 453700.0, 470300.0, 450000.0, 800000.0, 100000.0}, "Minnesota Central"},
	{2203, spcsLambert, [9]float64{0, 0, -940000.0, 0, 434700.0, 451300.0, 430000.0, 800000.0, 100000.0}, "Minnesota South"},
	{2301, spcsTransverseMercator, [9]float64{0, 0, -885000.0, 0.99995, 0, 0, 293000.0, 300000.0, 0}, "Mississippi East"},
	{2302, spcsTransverseMercator, [9]float64{0, 0, -901200.0, 0.99995, 0, 0, 293000.0, 700000.0, 0}, "Mississippi West"},
	{2401, spcsTransverseMercator, [9]float64{0, 0, -903000.0, 0.999933333, 0, 0, 355000.0, 250000.0, 0}, "Missouri East"},
	{2402, spcsTransverseMercator, [9]float64{0, 0, -923000.0, 0.999933333, 0, 0, 355000.0, 500000.0, 0}, "Missouri Central"},
	{2403, spcsTransverseMercator, [9]float64{0, 0, -943000.0, 0.999941177, 0, 0, 361000.0, 850000.0, 0}, "Missouri West"},
	{2500, spcsLambert, [9]float64{0, 0, -1093000.0, 0, 450000.0, 490000.0, 441500.0, 600000.0, 0}, "Montana"},
	{0, spcsUndefined, [9]float64{}, ""},
	{0, spcsUndefined, [9]float64{}, ""},
	{2600, spcsLambert, [9]float64{0, 0, -1000000.0, 0, 400000.0, 430000.0, 395000.0, 500000.0, 0}, "Nebraska"},
	{0, spcsUndefined, [9]float64{}, ""},
	{2701, spcsTransverseMercator, [9]float64{0, 0, -1153500.0, 0.9999, 0, 0, 344500.0, 200000.0, 8000000.0}, "Nevada East"},
	{2702, spcsTransverseMercator, [9]float64{0, 0, -1164000.0, 0.9999, 0, 0, 344500.0, 500000.0, 6000000.0}, "Nevada Central"},
	{2703, spcsTransverseMercator, [9]float64{0, 0, -1183500.0, 0.9999, 0, 0, 344500.0, 800000.0, 4000000.0}, "Nevada West"},
	{2800, spcsTransverseMercator, [9]float64{0, 0, -714000.0, 0.999966667, 0, 0, 423000.0, 300000.0, 0}, "New Hampshire"},
	{2900, spcsTransverseMercator, [9]float64{0, 0, -743000.0, 0.9999, 0, 0, 385000.0, 150000.0, 0}, "New Jersey"},
	{3001, spcsTransverseMercator, [9]float64{0, 0, -1042000.0, 0.999909091, 0, 0, 310000.0, 165000.0, 0}, "New Mexico East"},
	{3002, spcsTransverseMercator, [9]float64{0, 0, -1061500.0, 0.9999, 0, 0, 310000.0, 500000.0, 0}, "New Mexico Central"},
	{3003, spcsTransverseMercator, [9]float64{0, 0, -1075000.0, 0.999916667, 0, 0, 310000.0, 830000.0, 0}, "New Mexico West"},
	{3101, spcsTransverseMercator, [9]float64{0, 0, -743000.0, 0.9999, 0, 0, 385000.0, 150000.0, 0}, "New York East"},
	{3102, spcsTransverseMercator, [9]float64{0, 0, -763500.0, 0.9999375, 0, 0, 400000.0, 250000.0, 0}, "New York Central"},
	{3103, spcsTransverseMercator, [9]float64{0, 0, -783500.0, 0.9999375, 0, 0, 400000.0, 350000.0, 0}, "New York West"},
	{3104, spcsLambert, [9]float64{0, 0, -740000.0, 0, 404000.0, 410200.0, 401000.0, 300000.0, 0}, "New York Long Island"},
	{3200, spcsLambert, [9]float64{0, 0, -790000.0, 0, 342000.0, 361000.0, 334500.0, 609601.22, 0}, "North Carolina"},
	{3301, spcsLambert, [9]float64{0, 0, -1003000.0, 0, 472600.0, 484400.0, 470000.0, 600000.0, 0}, "North Dakota North"},
	{3302, spcsLambert, [9]float64{0, 0, -1003000.0, 0, 461100.0, 472900.0, 454000.0, 600000.0, 0}, "North Dakota South"},
	{3401, spcsLambert, [9]float64{0, 0, -823000.0, 0, 402600.0, 414200.0, 394000.0, 600000.0, 0}, "Ohio North"},
	{3402, spcsLambert, [9]float64{0, 0, -823000.0, 0, 384400.0, 400200.0, 380000.0, 600000.0, 0}, "Ohio South"},
	{3501, spcsLambert, [9]float64{0, 0, -980000.0, 0, 353400.0, 364600.0, 350000.0, 600000.0, 0}, "Oklahoma North"},
	{3502, spcsLambert, [9]float64{0, 0, -980000.0, 0, 335600.0, 351400.0, 332000.0, 600000.0, 0}, "Oklahoma South"},
	{3601, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 442000.0, 460000.0, 434000.0, 2500000.0, 0}, "Oregon North"},
	{3602, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 422000.0, 440000.0, 414000.0, 1500000.0, 0}, "Oregon South"},
	{3701, spcsLambert, [9]float64{0, 0, -774500.0, 0, 405300.0, 415700.0, 401000.0, 600000.0, 0}, "Pennsylvania North"},
	{3702, spcsLambert, [9]float64{0, 0, -774500.0, 0, 395600.0, 405800.0, 392000.0, 600000.0, 0}, "Pennsylvania South"},
	{3800, spcsTransverseMercator, [9]float64{0, 0, -713000.0, 0.99999375, 0, 0, 410500.0, 100000.0, 0}, "Rhode Island"},
	{3900, spcsLambert, [9]float64{0, 0, -810000.0, 0, 323000.0, 345000.0, 315000.0, 609600.0, 0}, "South Carolina"},
	{0, spcsUndefined, [9]float64{}, ""},
	{4001, spcsLambert, [9]float64{0, 0, -1000000.0, 0, 442500.0, 454100.0, 435000.0, 600000.0, 0}, "South Dakota North"},
	{4002, spcsLambert, [9]float64{0, 0, -1002000.0, 0, 425000.0, 442400.0, 422000.0, 600000.0, 0}, "South Dakota South"},
	{4100, spcsLambert, [9]float64{0, 0, -860000.0, 0, 351500.0, 362500.0, 342000.0, 600000.0, 0}, "Tennessee"},
	{4201, spcsLambert, [9]float64{0, 0, -1013000.0, 0, 343900.0, 361100.0, 340000.0, 200000.0, 1000000.0}, "Texas North"},
	{4202, spcsLambert, [9]float64{0, 0, -983000.0, 0, 320800.0, 335800.0, 314000.0, 600000.0, 2000000.0}, "Texas North Central"},
	{4203, spcsLambert, [9]float64{0, 0, -1002000.0, 0, 300700.0, 315300.0, 294000.0, 700000.0, 3000000.0}, "Texas Central"},
	{4204, spcsLambert, [9]float64{0, 0, -990000.0, 0, 282300.0, 301700.0, 275000.0, 600000.0, 4000000.0}, "Texas South Central"},
	{4205, spcsLambert, [9]float64{0, 0, -983000.0, 0, 261000.0, 275000.0, 254000.0, 300000.0, 5000000.0}, "Texas South"},
	{4301, spcsLambert, [9]float64{0, 0, -1113000.0, 0, 404300.0, 414700.0, 402000.0, 500000.0, 1000000.0}, "Utah North"},
	{4302, spcsLambert, [9]float64{0, 0, -1113000.0, 0, 390100.0, 403900.0, 382000.0, 500000.0, 2000000.0}, "Utah Central"},
	{4303, spcsLambert, [9]float64{0, 0, -1113000.0, 0, 371300.0, 382100.0, 364000.0, 500000.0, 3000000.0}, "Utah South"},
	{4400, spcsTransverseMercator, [9]float64{0, 0, -723000.0, 0.999964286, 0, 0, 423000.0, 500000.0, 0}, "Vermont"},
	{4501, spcsLambert, [9]float64{0, 0, -783000.0, 0, 380200.0, 391200.0, 374000.0, 3500000.0, 2000000.0}, "Virginia North"},
	{4502, spcsLambert, [9]float64{0, 0, -783000.0, 0, 364600.0, 375800.0, 362000.0, 3500000.0, 1000000.0}, "Virginia South"},
	{4601, spcsLambert, [9]float64{0, 0, -1205000.0, 0, 473000.0, 484400.0, 470000.0, 500000.0, 0}, "Washington North"},
	{4602, spcsLambert, [9]float64{0, 0, -1203000.0, 0, 455000.0, 472000.0, 452000.0, 500000.0, 0}, "Washington South"},
	{4701, spcsLambert, [9]float64{0, 0, -793000.0, 0, 390000.0, 401500.0, 383000.0, 600000.0, 0}, "West Virginia North"},
	{4702, spcsLambert, [9]float64{0, 0, -810000.0, 0, 372900.0, 385300.0, 370000.0, 600000.0, 0}, "West Virginia South"},
	{4801, spcsLambert, [9]float64{0, 0, -900000.0, 0, 453400.0, 464600.0, 451000.0, 600000.0, 0}, "Wisconsin North"},
	{4802, spcsLambert, [9]float64{0, 0, -900000.0, 0, 441500.0, 453000.0, 435000.0, 600000.0, 0}, "Wisconsin Central"},
	{4803, spcsLambert, [9]float64{0, 0, -900000.0, 0, 424400.0, 440400.0, 420000.0, 600000.0, 0}, "Wisconsin South"},
	{4901, spcsTransverseMercator, [9]float64{0, 0, -1051000.0, 0.9999375, 0, 0, 403000.0, 200000.0, 0}, "Wyoming East"},
	{4902, spcsTransverseMercator, [9]float64{0, 0, -1072000.0, 0.9999375, 0, 0, 403000.0, 400000.0, 100000.0}, "Wyoming East Central"},
	{4903, spcsTransverseMercator, [9]float64{0, 0, -1084500.0, 0.9999375, 0, 0, 403000.0, 600000.0, 0}, "Wyoming West Central"},
	{4904, spcsTransverseMercator, [9]float64{0, 0, -1100500.0, 0.9999375, 0, 0, 403000.0, 800000.0, 100000.0}, "Wyoming West"},
	{5200, spcsLambert, [9]float64{0, 0, -662600.0, 0, 180200.0, 182600.0, 175000.0, 200000.0, 200000.0}, "Puerto Rico & Virgin Islands"},
	{0, spcsUndefined, [9]float64{}, ""},
	{0, spcsUndefined, [9]float64{}, ""},
	{5400, spcsPolyconic, [9]float64{0, 0, 1444455.5, 0, 0, 0, 132820.9, 50000.0, 50000.0}, "Guam"},
}
