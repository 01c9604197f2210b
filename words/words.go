// Package words bundles the curated dictionary used by the Boggle engine.
// The list favors short common words since a 4x4 board rarely yields long
// ones; lookup happens through a trie built once on first use.
package words

import (
	"strings"
	"sync"

	"github.com/regardlessly/multiplayer-games/trie"
)

var (
	once sync.Once
	dict *trie.Trie
)

// Dict returns the shared dictionary trie, building it on first call.
func Dict() *trie.Trie {
	once.Do(func() {
		dict = trie.New()
		for _, w := range strings.Fields(raw) {
			dict.Add(w)
		}
	})
	return dict
}

var raw = `
ACE ACED ACES ACHE ACID ACRE ACT ACTS ADD ADDS ADO AFT AGE AGED AGES AGO AID
AIDE AIDS AIL AIM AIMS AIR AIRS ALE ALES ALL ALLY ALOE ALSO ALTO AMID AMP AMPS
AND ANGEL ANGER ANGLE ANT ANTE ANTS ANY APE APES APT ARC ARCH ARCS ARE AREA
ARID ARM ARMS ART ARTS ASH ASK ASKS ASP ATE ATOM AUNT AUTO AVID AWE AXE AXES
AXIS AYE BAD BADGE BAG BAGS BAIL BAIT BAKE BALD BALE BALL BAN BAND BANE BANG
BANK BANS BAR BARD BARE BARGE BARK BARN BARS BASE BASH BASIC BASIN BASS BAT
BATCH BATH BATS BAY BAYS BEACH BEAD BEADS BEAK BEAM BEAMS BEAN BEANS BEAR
BEARD BEARS BEAST BEAT BEATS BED BEDS BEE BEEF BEEN BEER BEES BEET BEG BEGAN
BEGIN BEGS BELL BELLS BELT BELTS BEND BENDS BENT BEST BET BETS BID BIDS BIG
BIKE BIKES BILE BILL BILLS BIN BIND BINDS BINS BIRD BIRDS BIT BITE BITES BITS
BLADE BLAME BLAND BLANK BLAST BLAZE BLEAK BLEED BLEND BLESS BLIND BLINK BLISS
BLOB BLOCK BLOND BLOOD BLOOM BLOT BLOW BLOWN BLUE BLUES BLUNT BLUR BLUSH BOA
BOAR BOARD BOAST BOAT BOATS BODE BODY BOG BOIL BOILS BOLD BOLT BOLTS BOMB BOND
BONDS BONE BONES BOO BOOK BOOKS BOOM BOOMS BOON BOOST BOOT BOOTH BOOTS BORE
BORED BORN BOSS BOTH BOUND BOUT BOW BOWED BOWEL BOWL BOWLS BOWS BOX BOXED
BOXES BOY BOYS BRACE BRAG BRAID BRAIN BRAKE BRAN BRAND BRASS BRAT BRAVE BREAD
BREAK BREED BREW BRIBE BRICK BRIDE BRIEF BRIM BRING BRINK BRISK BROAD BROKE
BROOD BROOK BROOM BROTH BROW BROWN BRUSH BUCK BUD BUDS BUG BUGS BUILD BUILT
BULB BULBS BULK BULL BUMP BUMPS BUN BUNCH BUNS BURN BURNS BURST BUS BUSES BUSH
BUST BUSY BUT BUY BUYS CAB CABIN CABLE CABS CAFE CAGE CAGES CAKE CAKES CALF
CALL CALLS CALM CAME CAMEL CAMP CAMPS CAN CANAL CANDY CANE CANES CANOE CANS
CAP CAPE CAPES CAPS CAR CARD CARDS CARE CARED CARES CARGO CARS CART CARTS
CARVE CASE CASES CASH CAST CASTE CASTS CAT CATCH CATS CAUSE CAVE CAVES CEASE
CEDAR CELL CELLS CENT CENTS CHAIN CHAIR CHALK CHAMP CHANT CHAOS CHAP CHAPS
CHARM CHART CHASE CHAT CHATS CHEAP CHEAT CHECK CHEEK CHEER CHEF CHEFS CHESS
CHEST CHEW CHEWS CHICK CHIEF CHILD CHILL CHIN CHIP CHIPS CHOIR CHOKE CHOP
CHOPS CHORD CHORE CHOSE CHUNK CITE CITED CITES CITY CIVIC CIVIL CLAD CLAIM
CLAM CLAMP CLAMS CLAN CLANS CLAP CLAPS CLASH CLASP CLASS CLAW CLAWS CLAY CLEAN
CLEAR CLERK CLICK CLIFF CLIMB CLING CLIP CLIPS CLOAK CLOCK CLONE CLOSE CLOT
CLOTH CLOUD CLOWN CLUB CLUBS CLUE CLUES CLUMP CLUNG COACH COAL COALS COAST
COAT COATS COB COBRA COCOA COD CODE CODES COIL COILS COIN COINS COLA COLD
COLON COLOR COLT COLTS COMA COMB COMBS COME COMES COMET COMIC CON CONCH CONE
CONES COOK COOKS COOL COOLS COPE COPED COPES COPS COPY CORAL CORD CORDS CORE
CORES CORN CORPS COST COSTS COT COTS COUCH COUGH COUNT COURT COVE COVER COVES
COW COWS COZY CRAB CRABS CRACK CRAFT CRAMP CRANE CRASH CRATE CRAVE CRAWL CRAZE
CREAK CREAM CREED CREEK CREEP CREPT CREST CREW CREWS CRIB CRIED CRIES CRIME
CRISP CROP CROPS CROSS CROW CROWD CROWN CROWS CRUDE CRUEL CRUMB CRUSH CRUST
CUB CUBE CUBES CUBIC CUBS CUE CUES CUFF CUFFS CULT CULTS CUP CUPS CURB CURBS
CURE CURED CURES CURL CURLS CURSE CURVE CUT CUTE CUTS CYCLE DAB DAD DADS DAILY
DAIRY DAISY DAM DAME DAMP DAMS DANCE DARE DARED DARES DARK DART DARTS DASH
DATA DATE DATED DATES DAWN DAWNS DAY DAYS DAZE DEAD DEAF DEAL DEALS DEALT DEAN
DEAR DEBIT DEBT DEBTS DEBUT DECAY DECK DECKS DECOR DEED DEEDS DEEP DEER DELAY
DELTA DEN DENIM DENS DENSE DENT DENTS DENY DEPOT DEPTH DESK DESKS DEW DIAL
DIALS DICE DID DIE DIED DIES DIET DIETS DIG DIGIT DIGS DIM DIME DIMES DINE
DINED DINER DINGY DIP DIPS DIRE DIRT DIRTY DISC DISCS DISH DITCH DIVE DIVED
DIVER DIVES DIZZY DO DOCK DOCKS DOE DOES DOG DOGS DOING DOLL DOLLS DOME DOMES
DON DONE DONOR DONUT DOOM DOOR DOORS DOSE DOSES DOT DOTS DOUBT DOUGH DOVE
DOVES DOWN DOZE DOZEN DRAB DRAFT DRAG DRAGS DRAIN DRAMA DRANK DRAPE DRAW
DRAWL DRAWN DRAWS DREAD DREAM DRESS DREW DRIED DRIER DRIFT DRILL DRINK DRIP
DRIPS DRIVE DRONE DROOP DROP DROPS DROVE DROWN DRUG DRUGS DRUM DRUMS DRY DUCK
DUCKS DUCT DUE DUEL DUELS DUES DUET DUETS DUG DUKE DUKES DULL DULY DUMB DUMP
DUMPS DUNE DUNES DUSK DUST DUSTY DUTY DWARF DWELL DYE DYED DYES EACH EAGER
EAGLE EAR EARL EARLY EARN EARNS EARS EARTH EASE EASED EASEL EASES EAST EASY
EAT EATEN EATS EBB EBONY ECHO EDGE EDGES EDGY EDIT EDITS EEL EELS EGG EGGS
EGO EIGHT ELBOW ELDER ELECT ELITE ELF ELK ELM ELMS ELOPE ELSE ELUDE EMIT
EMPTY END ENDED ENDS ENEMY ENJOY ENTER ENTRY ENVY EPIC EPICS EQUAL ERA ERAS
ERASE ERECT ERR ERROR ERUPT ESSAY ETCH ETHIC EVADE EVE EVEN EVENT EVER EVERY
EVIL EVOKE EXACT EXAM EXAMS EXIT EXITS EXPEL EXTRA EYE EYED EYES FABLE FACE
FACED FACES FACT FACTS FADE FADED FADES FAIL FAILS FAINT FAIR FAIRY FAITH FAKE
FALL FALLS FALSE FAME FAN FANCY FANG FANGS FANS FAR FARCE FARE FARED FARES
FARM FARMS FAST FAT FATAL FATE FAULT FAVOR FAWN FEAR FEARS FEAST FEAT FEATS
FED FEE FEED FEEDS FEEL FEELS FEES FEET FELL FELT FENCE FERN FERNS FERRY FETCH
FEVER FEW FIBER FIELD FIEND FIG FIGHT FIGS FILE FILED FILES FILL FILLS FILM
FILMS FILTH FIN FINAL FIND FINDS FINE FINED FINER FINS FIRE FIRED FIRES FIRM
FIRMS FIRST FISH FIST FISTS FIT FITS FIVE FIX FIXED FIXES FLAG FLAGS FLAIR
FLAKE FLAME FLANK FLAP FLAPS FLARE FLASH FLASK FLAT FLATS FLAW FLAWS FLEA
FLEAS FLED FLEE FLEET FLESH FLEW FLICK FLIES FLING FLINT FLIP FLIPS FLIRT
FLOAT FLOCK FLOOD FLOOR FLOP FLOPS FLOSS FLOUR FLOW FLOWN FLOWS FLU FLUID
FLUNG FLUSH FLUTE FLY FOAL FOAM FOCAL FOCUS FOE FOES FOG FOGGY FOIL FOLD
FOLDS FOLK FOLKS FOND FONT FONTS FOOD FOODS FOOL FOOLS FOOT FOR FORCE FORD
FORGE FORK FORKS FORM FORMS FORT FORTE FORTH FORTS FORUM FOUL FOUND FOUR FOWL
FOX FOXES FOYER FRAIL FRAME FRANK FRAUD FRAY FREE FREED FRESH FRET FRIED FROG
FROGS FROM FRONT FROST FROTH FROWN FROZE FRUIT FUDGE FUEL FUELS FULL FUME
FUMES FUN FUND FUNDS FUNGI FUNNY FUR FURS FURY FUSE FUSED FUSES FUSS FUZZY
GAIN GAINS GAIT GALA GALE GALES GAME GAMES GANG GANGS GAP GAPS GAS GASP GASPS
GATE GATES GAVE GAZE GAZED GEAR GEARS GEESE GEM GEMS GENE GENES GENIE GENRE
GET GETS GHOST GIANT GIFT GIFTS GIG GILL GILLS GIN GIRL GIRLS GIST GIVE GIVEN
GIVES GLAD GLADE GLAND GLARE GLASS GLAZE GLEAM GLEE GLIDE GLINT GLOAT GLOBE
GLOOM GLORY GLOSS GLOVE GLOW GLOWS GLUE GLUED GNAT GNATS GNAW GNAWS GO GOAL
GOALS GOAT GOATS GOD GODS GOES GOING GOLD GOLF GONE GONG GOOD GOODS GOOSE
GORGE GOT GOWN GOWNS GRAB GRABS GRACE GRADE GRAIN GRAND GRANT GRAPE GRAPH
GRASP GRASS GRATE GRAVE GRAVY GRAY GRAZE GREAT GREED GREEN GREET GREW GREY
GRID GRIDS GRIEF GRILL GRIM GRIME GRIN GRIND GRINS GRIP GRIPS GRIT GROAN
GROOM GROUP GROVE GROW GROWL GROWN GROWS GRUB GRUFF GRUNT GUARD GUESS GUEST
GUIDE GUILD GUILT GULF GULL GULLS GULP GULPS GUM GUMS GUN GUNS GUSH GUST
GUSTS GUT GUTS GUY GUYS GYM GYMS HABIT HACK HAD HAIL HAIR HAIRS HALE HALF
HALL HALLS HALT HALTS HAM HAMS HAND HANDS HANG HANGS HARD HARE HARES HARM
HARMS HARP HARPS HARSH HAS HASTE HAT HATCH HATE HATED HATES HATS HAUL HAULS
HAUNT HAVE HAVEN HAWK HAWKS HAY HAZE HAZEL HAZY HE HEAD HEADS HEAL HEALS
HEAP HEAPS HEAR HEARD HEARS HEART HEAT HEATS HEAVE HEAVY HEDGE HEED HEEL
HEELS HEIR HEIRS HELD HELLO HELM HELP HELPS HEM HEMS HEN HENCE HENS HER HERB
HERBS HERD HERDS HERE HERO HERON HERS HID HIDE HIDES HIGH HIKE HIKED HIKER
HIKES HILL HILLS HIM HINGE HINT HINTS HIP HIPS HIRE HIRED HIRES HIS HISS HIT
HITCH HITS HIVE HIVES HOARD HOBBY HOG HOGS HOIST HOLD HOLDS HOLE HOLES HOLLY
HOLY HOME HOMES HONEY HONK HONKS HONOR HOOD HOODS HOOF HOOK HOOKS HOOP HOOPS
HOP HOPE HOPED HOPES HOPS HORN HORNS HORSE HOSE HOST HOSTS HOT HOTEL HOUND
HOUR HOURS HOUSE HOVER HOW HOWL HOWLS HUB HUBS HUE HUES HUG HUGE HUGS HULL
HUM HUMAN HUMID HUMOR HUMP HUMS HUNCH HUNG HUNT HUNTS HURL HURLS HURRY HURT
HURTS HUSH HUSK HUT HUTS HYMN HYMNS ICE ICED ICES ICING ICON ICONS ICY IDEA
IDEAL IDEAS IDIOM IDLE IDOL IDOLS IF IGLOO ILL IMAGE IMPLY IN INCH INDEX INERT
INFER INK INKS INLET INN INNER INNS INPUT INTO ION IONS IRATE IRIS IRON IRONS
IRONY IS ISLE ISLES ISSUE IT ITCH ITEM ITEMS ITS IVORY IVY JADE JAIL JAM JAMS
JAR JARS JAW JAWS JAZZ JEANS JEEP JEEPS JELLY JET JETS JEWEL JIG JIGS JOB JOBS
JOG JOGS JOIN JOINS JOINT JOKE JOKED JOKER JOKES JOLLY JOLT JOLTS JOY JUDGE
JUICE JUICY JUMBO JUMP JUMPS JUNE JUNK JURY JUST KEEL KEEN KEEP KEEPS KEG KEGS
KELP KEPT KEY KEYS KICK KICKS KID KIDS KILN KILT KILTS KIN KIND KINDS KING
KINGS KIOSK KISS KIT KITE KITES KITS KNACK KNEAD KNEE KNEEL KNEES KNELT KNEW
KNIFE KNIT KNITS KNOB KNOBS KNOCK KNOT KNOTS KNOW KNOWN KNOWS LAB LABEL LABOR
LABS LACE LACED LACES LACK LACKS LAD LADEN LADLE LADS LADY LAID LAIR LAIRS
LAKE LAKES LAMB LAMBS LAME LAMP LAMPS LANCE LAND LANDS LANE LANES LAP LAPEL
LAPS LARGE LARK LARKS LASER LASH LAST LASTS LATCH LATE LATER LATHE LAUGH
LAVA LAW LAWN LAWNS LAWS LAY LAYER LAYS LAZY LEAD LEADS LEAF LEAK LEAKS LEAN
LEANS LEAP LEAPS LEAPT LEARN LEASE LEASH LEAST LEAVE LED LEDGE LEEK LEEKS
LEFT LEG LEGAL LEGS LEMON LEND LENDS LENS LENT LESS LET LETS LEVEL LEVER LID
LIDS LIE LIED LIES LIFE LIFT LIFTS LIGHT LIKE LIKED LIKES LILY LIMB LIMBS
LIME LIMES LIMIT LIMP LIMPS LINE LINED LINEN LINER LINES LINGO LINK LINKS
LINT LION LIONS LIP LIPS LIST LISTS LIT LITER LIVE LIVED LIVER LIVES LOAD
LOADS LOAF LOAN LOANS LOBBY LOBE LOBES LOCAL LOCK LOCKS LODGE LOFT LOFTS LOG
LOGIC LOGO LOGOS LOGS LONE LONG LOOK LOOKS LOOM LOOMS LOOP LOOPS LOOSE LOOT
LORD LORDS LOSE LOSER LOSES LOSS LOST LOT LOTS LOUD LOVE LOVED LOVER LOVES
LOW LOWER LOYAL LUCK LUCKY LULL LUMP LUMPS LUNAR LUNCH LUNG LUNGE LUNGS LURE
LURED LURES LURK LURKS LUSH LUTE LYING LYRIC MACE MAD MADE MAGIC MAID MAIDS
MAIL MAILS MAIN MAJOR MAKE MAKER MAKES MALE MALES MALL MALLS MALT MAMA MAN
MANE MANES MANGO MANIA MANOR MANY MAP MAPLE MAPS MARCH MARE MARES MARK MARKS
MARRY MARSH MASK MASKS MASS MAST MASTS MAT MATCH MATE MATED MATES MATH MATS
MAUVE MAXIM MAY MAYBE MAYOR MAZE MAZES MEAD MEAL MEALS MEAN MEANS MEANT MEAT
MEATS MEDAL MEDIA MEEK MEET MEETS MELD MELON MELT MELTS MEMO MEMOS MEN MEND
MENDS MENU MENUS MERCY MERE MERGE MERIT MERRY MESH MESS MET METAL METER METRO
MICE MID MIDST MIGHT MILD MILE MILES MILK MILKY MILL MILLS MIME MIMIC MIND
MINDS MINE MINED MINER MINES MINOR MINT MINTS MINUS MIRTH MISS MIST MISTS
MITT MITTS MIX MIXED MIXER MIXES MOAN MOANS MOAT MOATS MOB MOBS MOCK MODE
MODEL MODEM MODES MOIST MOLD MOLDS MOLE MOLES MOM MOMS MONEY MONK MONKS MONTH
MOOD MOODS MOON MOONS MOOSE MOP MOPS MORAL MORE MORN MOSS MOST MOTEL MOTH
MOTHS MOTOR MOTTO MOUND MOUNT MOUSE MOUTH MOVE MOVED MOVER MOVES MOVIE MOW
MOWED MOWS MUCH MUD MUG MUGS MULE MULES MUM MUMMY MUNCH MURAL MUSE MUSED
MUSIC MUST MUTE MUTED MYTH MYTHS NAG NAGS NAIL NAILS NAME NAMED NAMES NAP
NAPS NAVAL NAVY NEAR NEAT NECK NECKS NEED NEEDS NERVE NEST NESTS NET NETS
NEVER NEW NEWER NEWLY NEWS NEXT NICE NICER NICHE NIECE NIGHT NINE NINTH NIP
NIPS NO NOBLE NOD NODS NOISE NOISY NONE NOON NOOSE NOR NORM NORMS NORTH NOSE
NOSES NOT NOTCH NOTE NOTED NOTES NOUN NOUNS NOVEL NOW NUDGE NULL NUMB NURSE
NUT NUTS NYLON OAK OAKS OAR OARS OASIS OAT OATH OATHS OATS OBEY OBEYS OBOE
OCCUR OCEAN ODD ODDS ODE ODES ODOR ODORS OF OFF OFFER OFTEN OIL OILS OILY
OK OKAY OLD OLDER OLIVE OMEN OMENS OMIT OMITS ON ONCE ONE ONES ONION ONLY
ONSET ONTO OOZE OPAL OPALS OPEN OPENS OPERA OPT OPTED OPTIC OPTS OR ORAL
ORBIT ORDER ORE ORES ORGAN OTHER OTTER OUGHT OUNCE OUR OURS OUT OUTER OVAL
OVALS OVEN OVENS OVER OWE OWED OWES OWL OWLS OWN OWNED OWNER OWNS OX OXEN
PACE PACED PACES PACK PACKS PACT PACTS PAD PADS PAGE PAGES PAID PAIL PAILS
PAIN PAINS PAINT PAIR PAIRS PALE PALER PALM PALMS PAN PANDA PANEL PANIC PANS
PANT PANTS PAPA PAPER PAR PARK PARKS PART PARTS PARTY PASS PAST PASTA
PASTE PAT PATCH PATH PATHS PATIO PATS PAUSE PAVE PAVED PAW PAWN PAWNS PAWS
PAY PAYS PEA PEACE PEACH PEAK PEAKS PEAR PEARL PEARS PEAS PECK PECKS PEDAL
PEEL PEELS PEER PEERS PEG PEGS PEN PENCE PENNY PENS PER PERCH PERIL PERK
PERKS PEST PESTS PET PETAL PETS PHASE PHONE PHOTO PIANO PICK PICKS PIE PIECE
PIER PIERS PIES PIG PIGS PILE PILED PILES PILL PILLS PILOT PIN PINCH PINE
PINES PINK PINS PINT PINTS PIPE PIPES PIT PITCH PITS PITY PIVOT PIXEL PIZZA
PLACE PLAID PLAIN PLAN PLANE PLANK PLANS PLANT PLATE PLAY PLAYS PLAZA PLEA
PLEAD PLEAS PLEAT PLIED PLOT PLOTS PLOW PLOWS PLUCK PLUG PLUGS PLUM PLUMB
PLUME PLUMP PLUMS PLUS PLUSH POACH POD PODS POEM POEMS POET POETS POINT POISE
POKE POKED POKER POKES POLAR POLE POLES POLL POLLS POND PONDS PONY POOL POOLS
POOR POP POPS PORCH PORE PORES PORK PORT PORTS POSE POSED POSES POST POSTS
POT POTS POUCH POUND POUR POURS POUT POUTS POWER PRANK PRAWN PRAY PRAYS PRESS
PREY PRICE PRIDE PRIME PRINT PRIOR PRISM PRIZE PROBE PROD PRODS PROM PROMS
PRONE PRONG PROOF PROP PROPS PROSE PROUD PROVE PROWL PROXY PRUNE PRY PUB PUBS
PUCK PUCKS PUFF PUFFS PULL PULLS PULP PULSE PUMP PUMPS PUN PUNCH PUNS PUNT
PUNTS PUP PUPIL PUPS PURE PURGE PURSE PUSH PUT PUTS PUTT PUTTY QUACK QUAIL
QUAKE QUALM QUART QUAY QUEEN QUERY QUEST QUEUE QUICK QUIET QUILL QUILT QUIP
QUIPS QUIRK QUIT QUITE QUITS QUIZ QUOTA QUOTE RACE RACED RACER RACES RACK
RACKS RADAR RADIO RAFT RAFTS RAG RAGE RAGED RAGES RAGS RAID RAIDS RAIL RAILS
RAIN RAINS RAINY RAISE RAKE RAKED RAKES RALLY RAM RAMP RAMPS RAMS RAN RANCH
RANGE RANK RANKS RAP RAPID RAPS RARE RASH RAT RATE RATED RATES RATIO RATS
RAVE RAVEN RAVES RAW RAY RAYS RAZOR REACH REACT READ READS READY REAL REALM
REAM REAP REAPS REAR REBEL RECAP RED REED REEDS REEF REEFS REEL REELS REFER
REIGN REIN REINS RELAX RELAY RELIC RELY REMIT RENEW RENT RENTS REPAY REPEL
REPLY RESET REST RESTS RETRY REUSE REV REVS RHYME RIB RIBS RICE RICH RID RIDE
RIDER RIDES RIDGE RIFLE RIG RIGHT RIGID RIGS RIM RIMS RIND RINDS RING RINGS
RINSE RIOT RIOTS RIP RIPE RIPEN RIPS RISE RISEN RISES RISK RISKS RITE RITES
RIVAL RIVER ROAD ROADS ROAM ROAMS ROAR ROARS ROAST ROB ROBE ROBES ROBIN ROBOT
ROBS ROCK ROCKS ROD RODE RODS ROGUE ROLE ROLES ROLL ROLLS ROMP ROOF ROOFS
ROOK ROOKS ROOM ROOMS ROOST ROOT ROOTS ROPE ROPES ROSE ROSES ROSY ROT ROTS
ROUGE ROUGH ROUND ROUSE ROUTE ROVER ROW ROWED ROWS ROYAL RUB RUBS RUBY RUDE
RUDER RUG RUGS RUIN RUINS RULE RULED RULER RULES RUM RUMOR RUN RUNG RUNGS
RUNS RURAL RUSH RUST RUSTY RUT RUTS SACK SACKS SAD SAFE SAFER SAGA SAGAS SAGE
SAGES SAID SAIL SAILS SAINT SAKE SALAD SALE SALES SALSA SALT SALTS SALTY
SALVE SAME SAND SANDS SANDY SANE SANG SANK SAP SAPS SASH SAT SATIN SAUCE
SAVE SAVED SAVER SAVES SAVOR SAW SAWS SAY SAYS SCALE SCALP SCAM SCAN SCANS
SCAR SCARE SCARF SCARS SCENE SCENT SCOLD SCOOP SCOPE SCORE SCORN SCOUT SCOWL
SCRAP SCRUB SEA SEAL SEALS SEAM SEAMS SEAS SEAT SEATS SECT SEDAN SEE SEED
SEEDS SEEK SEEKS SEEM SEEMS SEEN SEEP SEEPS SEES SEIZE SELF SELL SELLS SEND
SENDS SENSE SENT SERUM SERVE SET SETS SETUP SEVEN SEW SEWED SEWN SEWS SHACK
SHADE SHAFT SHAKE SHAKY SHALE SHALL SHAME SHAPE SHARD SHARE SHARK SHARP SHAVE
SHAWL SHE SHEAR SHED SHEDS SHEEN SHEEP SHEER SHEET SHELF SHELL SHIED SHIFT
SHIN SHINE SHINS SHINY SHIP SHIPS SHIRT SHOAL SHOCK SHOE SHOES SHONE SHOOK
SHOOT SHOP SHOPS SHORE SHORN SHORT SHOT SHOTS SHOUT SHOVE SHOW SHOWN SHOWS
SHRED SHREW SHRUB SHRUG SHUN SHUNS SHUT SHUTS SHY SICK SIDE SIDES SIEGE SIEVE
SIFT SIFTS SIGH SIGHS SIGHT SIGN SIGNS SILK SILKS SILKY SILL SILLY SILO SILOS
SILT SIN SINCE SINEW SING SINGE SINGS SINK SINKS SINS SIP SIPS SIR SIREN SIRS
SIT SITE SITES SITS SIX SIXTH SIXTY SIZE SIZED SIZES SKATE SKETCH SKEW SKI
SKID SKIDS SKIED SKIER SKIES SKILL SKIM SKIMS SKIN SKINS SKIP SKIPS SKIRT
SKIS SKULL SKUNK SKY SLAB SLABS SLACK SLAIN SLAM SLAMS SLANG SLANT SLAP SLAPS
SLASH SLATE SLAVE SLED SLEDS SLEEK SLEEP SLEET SLEPT SLICE SLICK SLID SLIDE
SLIM SLIME SLING SLIP SLIPS SLIT SLITS SLOPE SLOT SLOTS SLOW SLOWS SLUG SLUGS
SLUMP SLUNG SLY SMACK SMALL SMART SMASH SMEAR SMELL SMELT SMILE SMIRK SMITH
SMOCK SMOG SMOKE SMUG SNACK SNAG SNAGS SNAIL SNAKE SNAP SNAPS SNARE SNARL
SNEAK SNEER SNIFF SNIP SNIPS SNOB SNOBS SNORE SNOUT SNOW SNOWS SNOWY SNUB
SNUBS SNUG SO SOAK SOAKS SOAP SOAPS SOAR SOARS SOB SOBER SOBS SOCK SOCKS SOD
SODA SODAS SOFA SOFAS SOFT SOIL SOILS SOLAR SOLD SOLE SOLES SOLID SOLO SOLOS
SOLVE SOME SON SONG SONGS SONIC SONS SOON SOOT SORE SORES SORRY SORT SORTS
SOUGHT SOUL SOULS SOUND SOUP SOUPS SOUR SOUTH SOW SOWED SOWN SOWS SPA SPACE
SPADE SPAN SPANS SPARE SPARK SPAS SPASM SPAT SPAWN SPEAK SPEAR SPECK SPED
SPEED SPELL SPEND SPENT SPICE SPICY SPIED SPIES SPIKE SPILL SPIN SPINE SPINS
SPIRE SPIT SPITE SPLIT SPOIL SPOKE SPOOL SPOON SPORE SPORT SPOT SPOTS SPOUT
SPRAY SPREE SPRIG SPUN SPUR SPURS SPY SQUAD SQUAT SQUID STAB STABS STACK
STAFF STAG STAGE STAGS STAIN STAIR STAKE STALE STALK STALL STAMP STAND STAR
STARE STARK STARS START STASH STATE STAVE STAY STAYS STEAK STEAL STEAM STEED
STEEL STEEP STEER STEM STEMS STEP STEPS STERN STEW STEWS STICK STIFF STILL
STILT STING STINT STIR STIRS STOCK STOIC STOLE STOMP STONE STOOD STOOL STOOP
STOP STOPS STORE STORK STORM STORY STOUT STOVE STOW STOWS STRAP STRAW STRAY
STRIP STRUT STUB STUBS STUCK STUD STUDS STUDY STUFF STUMP STUN STUNG STUNS
STUNT STYLE SUCH SUDS SUE SUED SUES SUGAR SUIT SUITE SUITS SULK SULKS SUM
SUMS SUN SUNG SUNK SUNNY SUNS SUPER SURE SURF SURGE SWAB SWAM SWAMP SWAN
SWANS SWAP SWAPS SWARM SWAT SWATS SWAY SWAYS SWEAR SWEAT SWEEP SWEET SWELL
SWEPT SWIFT SWIM SWIMS SWINE SWING SWIRL SWISH SWOOP SWORD SWORE SWORN SWUNG
SYRUP TAB TABLE TABS TACK TACKS TACO TACOS TACT TAG TAGS TAIL TAILS TAKE
TAKEN TAKES TALE TALES TALK TALKS TALL TAME TAMED TAMER TAMES TAN TANG TANGO
TANK TANKS TANS TAP TAPE TAPED TAPES TAPS TAR TAROT TART TARTS TASK TASKS
TASTE TASTY TAUGHT TAUNT TAUT TAX TAXED TAXES TAXI TAXIS TEA TEACH TEAK TEAL
TEAM TEAMS TEAR TEARS TEAS TEASE TECH TEEN TEENS TEETH TELL TELLS TEMPO TEN
TEND TENDS TENET TENOR TENS TENSE TENT TENTH TENTS TEPID TERM TERMS TERSE
TEST TESTS TEXT TEXTS THAN THANK THAT THAW THAWS THE THEFT THEIR THEM THEME
THEN THERE THESE THEY THICK THIEF THIGH THIN THING THINK THIRD THIS THORN
THOSE THREE THREW THROB THROW THUD THUDS THUMB THUMP THUS TICK TICKS TIDAL
TIDE TIDES TIDY TIE TIED TIER TIERS TIES TIGER TIGHT TILE TILED TILES TILL
TILT TILTS TIMBER TIME TIMED TIMER TIMES TIMID TIN TINGE TINS TINT TINTS
TINY TIP TIPS TIRE TIRED TIRES TITLE TO TOAD TOADS TOAST TODAY TOE TOES
TOFU TOGA TOIL TOILS TOKEN TOLD TOLL TOLLS TOMB TOMBS TON TONE TONED TONES
TONGS TONIC TONS TOO TOOK TOOL TOOLS TOOTH TOP TOPAZ TOPIC TOPS TORCH TORE
TORN TORSO TOSS TOTAL TOTE TOTED TOTEM TOTES TOUCH TOUGH TOUR TOURS TOW
TOWED TOWEL TOWER TOWN TOWNS TOWS TOY TOYS TRACE TRACK TRACT TRADE TRAIL
TRAIN TRAIT TRAM TRAMS TRAP TRAPS TRASH TRAWL TRAY TRAYS TREAD TREAT TREE
TREES TREK TREKS TREND TRIAL TRIBE TRICK TRIED TRIES TRIM TRIMS TRIO TRIOS
TRIP TRIPE TRIPS TRITE TROLL TROOP TROT TROTS TROUT TRUCE TRUCK TRUE TRULY
TRUNK TRUST TRUTH TRY TUB TUBA TUBAS TUBE TUBES TUBS TUCK TUCKS TUFT TUFTS
TUG TUGS TULIP TUMMY TUNA TUNAS TUNE TUNED TUNES TUNIC TURF TURN TURNS TUSK
TUSKS TUTOR TUXEDO TWEAK TWEED TWICE TWIG TWIGS TWIN TWINE TWINS TWIRL TWIST
TWO TYING TYPE TYPED TYPES UDDER UGLY ULCER UMPIRE UNCLE UNDER UNDO UNDUE
UNFIT UNIFY UNION UNIT UNITE UNITS UNTIE UNTIL UP UPON UPPER UPSET URBAN URGE
URGED URGES US USAGE USE USED USER USERS USES USHER USUAL UTTER VAGUE VAIN
VALET VALID VALOR VALUE VALVE VAN VANE VANES VANS VAPOR VASE VASES VAST VAT
VATS VAULT VEAL VEER VEERS VEIL VEILS VEIN VEINS VENOM VENT VENTS VENUE VERB
VERBS VERGE VERSE VERY VEST VESTS VET VETO VETS VEX VEXED VIA VIAL VIALS
VICE VICES VIDEO VIEW VIEWS VIGIL VIGOR VILE VILLA VINE VINES VINYL VIOLA
VIPER VIRUS VISA VISAS VISIT VISOR VISTA VITAL VIVID VOCAL VODKA VOGUE VOICE
VOID VOIDS VOLT VOLTS VOTE VOTED VOTER VOTES VOUCH VOW VOWED VOWEL VOWS
WAFER WAG WAGE WAGER WAGES WAGON WAGS WAIL WAILS WAIST WAIT WAITS WAIVE WAKE
WAKED WAKEN WAKES WALK WALKS WALL WALLS WAND WANDS WANE WANED WANES WANT
WANTS WAR WARD WARDS WARM WARMS WARN WARNS WARP WARPS WARS WART WARTS WARY
WAS WASH WASP WASPS WASTE WATCH WATER WAVE WAVED WAVER WAVES WAVY WAX WAXED
WAXES WAY WAYS WE WEAK WEAN WEANS WEAR WEARS WEARY WEAVE WEB WEBS WED WEDGE
WEDS WEE WEED WEEDS WEEK WEEKS WEEP WEEPS WEIGH WEIRD WELD WELDS WELL WELLS
WENT WEPT WERE WEST WET WETS WHALE WHARF WHAT WHEAT WHEEL WHEN WHERE WHICH
WHIFF WHILE WHIM WHIMS WHINE WHIP WHIPS WHIRL WHISK WHITE WHO WHOLE WHOM
WHOSE WHY WICK WICKS WIDE WIDEN WIDER WIDOW WIDTH WIELD WIFE WIG WIGS WILD
WILL WILLS WILT WILTS WIN WINCE WINCH WIND WINDS WINDY WINE WINES WING WINGS
WINK WINKS WINS WIPE WIPED WIPES WIRE WIRED WIRES WISE WISER WISH WISP WISPS
WIT WITCH WITH WITS WITTY WOKE WOKEN WOLF WOMAN WOMB WOMEN WON WOOD WOODS
WOOL WORD WORDS WORE WORK WORKS WORLD WORM WORMS WORN WORRY WORSE WORST
WORTH WOUND WOVE WOVEN WRAP WRAPS WRATH WREAK WRECK WREN WRENS WRIST WRITE
WRONG WROTE YACHT YAK YAKS YAM YAMS YARD YARDS YARN YARNS YAWN YAWNS YEAR
YEARN YEARS YEAST YELL YELLS YES YET YIELD YOGA YOKE YOKED YOKES YOLK YOLKS
YOU YOUNG YOUR YOUTH ZEAL ZEBRA ZERO ZEROS ZEST ZINC ZONE ZONED ZONES ZOO
ZOOM ZOOMS ZOOS
`
